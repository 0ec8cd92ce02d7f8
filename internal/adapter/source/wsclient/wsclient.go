// Package wsclient implements the spectrum source port over a WebSocket
// connection. It consumes JSON frames published by an external analysis
// engine, one magnitude array per message.
package wsclient

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

// message is the wire format of one spectrum frame.
type message struct {
	Magnitudes []float32 `json:"magnitudes"`
}

// Source reads spectrum frames from a WebSocket endpoint until the
// connection drops or Close is called.
type Source struct {
	log *slog.Logger
	url string

	conn   *websocket.Conn
	frames chan domain.Frame
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// New creates a WebSocket source for the given endpoint URL
// (for example ws://localhost:8080/ws).
func New(log *slog.Logger, url string) *Source {
	return &Source{
		log:    log.With(slog.String("source", "websocket"), slog.String("url", url)),
		url:    url,
		frames: make(chan domain.Frame, 1),
	}
}

// Start implements ports.SpectrumSource. It dials the endpoint and
// begins delivering frames.
func (s *Source) Start() error {
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial spectrum endpoint: %w", err)
	}
	s.conn = conn

	s.wg.Add(1)
	go s.readLoop()
	return nil
}

// Frames implements ports.SpectrumSource.
func (s *Source) Frames() <-chan domain.Frame {
	return s.frames
}

// Close implements ports.SpectrumSource.
func (s *Source) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.conn != nil {
			err = s.conn.Close()
		}
		s.wg.Wait()
	})
	return err
}

func (s *Source) readLoop() {
	defer s.wg.Done()
	defer close(s.frames)

	last := time.Now()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.log.Debug("spectrum connection closed", slog.Any("error", err))
			return
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.log.Warn("dropping malformed spectrum frame", slog.Any("error", err))
			continue
		}
		if len(msg.Magnitudes) == 0 {
			continue
		}

		now := time.Now()
		frame := domain.Frame{Magnitudes: msg.Magnitudes, Delta: now.Sub(last).Seconds()}
		last = now

		select {
		case s.frames <- frame:
		default:
			// Consumer is behind; drop the frame rather than buffer.
		}
	}
}

// Verify interface implementation at compile time.
var _ ports.SpectrumSource = (*Source)(nil)
