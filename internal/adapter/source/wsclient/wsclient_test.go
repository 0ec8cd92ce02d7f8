package wsclient

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/soundscape/internal/logger"
	"github.com/tejashwikalptaru/soundscape/internal/testutil"
)

// spectrumServer is a test WebSocket endpoint publishing canned payloads.
func spectrumServer(t *testing.T, payloads [][]byte) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		for _, payload := range payloads {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
		// Keep the connection open until the client hangs up.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestSourceReceivesFrames(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	server := spectrumServer(t, [][]byte{
		[]byte(`{"magnitudes":[0.1,0.5,0.9]}`),
	})
	defer server.Close()

	s := New(logger.NewTestLogger(), wsURL(server))
	require.NoError(t, s.Start())
	defer func() { _ = s.Close() }()

	select {
	case frame := <-s.Frames():
		require.Len(t, frame.Magnitudes, 3)
		assert.InDelta(t, 0.5, frame.Magnitudes[1], 1e-6)
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
}

func TestSourceSkipsMalformedAndEmptyFrames(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	server := spectrumServer(t, [][]byte{
		[]byte(`not json`),
		[]byte(`{"magnitudes":[]}`),
		[]byte(`{"magnitudes":[0.7]}`),
	})
	defer server.Close()

	s := New(logger.NewTestLogger(), wsURL(server))
	require.NoError(t, s.Start())
	defer func() { _ = s.Close() }()

	select {
	case frame := <-s.Frames():
		require.Len(t, frame.Magnitudes, 1)
		assert.InDelta(t, 0.7, frame.Magnitudes[0], 1e-6)
	case <-time.After(2 * time.Second):
		t.Fatal("the valid frame should still arrive")
	}
}

func TestSourceDialFailure(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	s := New(logger.NewTestLogger(), "ws://127.0.0.1:1/nope")
	err := s.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dial")
	assert.NoError(t, s.Close())
}

func TestSourceCloseStopsDelivery(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	server := spectrumServer(t, nil)
	defer server.Close()

	s := New(logger.NewTestLogger(), wsURL(server))
	require.NoError(t, s.Start())

	require.NoError(t, s.Close())

	// The frames channel closes once the read loop exits.
	select {
	case _, ok := <-s.Frames():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("frames channel did not close")
	}
}

func TestSourceServerDisconnect(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Close() // immediate server-side hangup
	}))
	defer server.Close()

	s := New(logger.NewTestLogger(), wsURL(server))
	require.NoError(t, s.Start())
	defer func() { _ = s.Close() }()

	select {
	case _, ok := <-s.Frames():
		assert.False(t, ok, "hangup closes the frames channel")
	case <-time.After(2 * time.Second):
		t.Fatal("frames channel did not close")
	}
}
