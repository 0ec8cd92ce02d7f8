package fyneui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	defaultWidth  = 960
	defaultHeight = 540
)

// MainWindow hosts the visualizer widget. It is a thin view: style
// selection and frame delivery are driven from the application layer.
type MainWindow struct {
	app    fyne.App
	window fyne.Window
	widget *VisualizerWidget

	closeOnce sync.Once

	onCycle func()
}

// NewMainWindow creates the main window around the given widget.
func NewMainWindow(app fyne.App, title string, vw *VisualizerWidget) *MainWindow {
	w := &MainWindow{
		app:    app,
		widget: vw,
	}

	w.window = app.NewWindow(title)
	w.window.SetContent(container.NewStack(vw))
	w.window.Resize(fyne.Size{Width: defaultWidth, Height: defaultHeight})

	return w
}

// SetOnCycleStyle registers the callback invoked when the user asks for
// the next style, via double tap or the space key.
func (w *MainWindow) SetOnCycleStyle(fn func()) {
	w.onCycle = fn
	w.widget.SetOnDoubleTap(fn)

	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName: fyne.KeySpace,
	}, func(fyne.Shortcut) {
		if w.onCycle != nil {
			w.onCycle()
		}
	})
}

// SetTitle updates the window title, typically with the active style name.
func (w *MainWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Widget returns the hosted visualizer widget.
func (w *MainWindow) Widget() *VisualizerWidget {
	return w.widget
}

// ShowAndRun shows the window and runs the Fyne event loop. It blocks
// until the window closes.
func (w *MainWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// Close closes the window. Safe to call multiple times.
func (w *MainWindow) Close() {
	w.closeOnce.Do(func() {
		w.window.Close()
	})
}
