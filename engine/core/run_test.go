package core

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	frames    int // ShouldClose turns true after this many frames
	polled    int
	swapped   int
	w, h      int
	destroyed bool
	closed    bool
	onEvent   func(Event)
	pending   []Event // emitted on the first poll
}

func (w *fakeWindow) PollEvents() {
	w.polled++
	for _, ev := range w.pending {
		w.onEvent(ev)
	}
	w.pending = nil
}
func (w *fakeWindow) SwapBuffers()                { w.swapped++ }
func (w *fakeWindow) ShouldClose() bool           { return w.closed || w.swapped >= w.frames }
func (w *fakeWindow) RequestClose()               { w.closed = true }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.w, w.h }
func (w *fakeWindow) SetTitle(string)             {}
func (w *fakeWindow) Destroy()                    { w.destroyed = true }

func (w *fakeWindow) SetEventCallback(f func(Event)) { w.onEvent = f }

type fakeRenderer struct {
	initErr  error
	sizes    [][2]int
	clears   []float32
	shutdown bool
}

func (r *fakeRenderer) Init() error               { return r.initErr }
func (r *fakeRenderer) Resize(w, h int)           { r.sizes = append(r.sizes, [2]int{w, h}) }
func (r *fakeRenderer) Clear(rr, g, b, a float32) { r.clears = append(r.clears, rr) }
func (r *fakeRenderer) Shutdown()                 { r.shutdown = true }

type recordingApp struct {
	startErr  error
	started   int
	updates   int
	renders   int
	events    []Event
	shutdowns int
	onEvent   func(e *Engine, ev Event)
}

func (a *recordingApp) OnStart(e *Engine) error { a.started++; return a.startErr }
func (a *recordingApp) OnUpdate(e *Engine, dt float64) {
	a.updates++
}
func (a *recordingApp) OnRender(e *Engine, alpha float64) { a.renders++ }
func (a *recordingApp) OnEvent(e *Engine, ev Event) {
	a.events = append(a.events, ev)
	if a.onEvent != nil {
		a.onEvent(e, ev)
	}
}
func (a *recordingApp) OnShutdown(e *Engine) { a.shutdowns++ }

func runWith(app App, win *fakeWindow, rend *fakeRenderer) error {
	cfg := Config{
		ClearColor: [4]float32{0.25, 0, 0, 1},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return Run(app, cfg,
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil })
}

func TestRun_FrameLoop(t *testing.T) {
	win := &fakeWindow{frames: 3, w: 640, h: 480}
	rend := &fakeRenderer{}
	app := &recordingApp{}

	require.NoError(t, runWith(app, win, rend))

	assert.Equal(t, 1, app.started)
	assert.Equal(t, 3, app.renders)
	assert.Equal(t, 1, app.shutdowns)
	assert.Equal(t, 3, win.polled)
	assert.Equal(t, []float32{0.25, 0.25, 0.25}, rend.clears)
	assert.Equal(t, [][2]int{{640, 480}}, rend.sizes)
	assert.True(t, rend.shutdown)
	assert.True(t, win.destroyed)
}

func TestRun_FixedUpdates(t *testing.T) {
	win := &fakeWindow{frames: 2, w: 1, h: 1}
	app := &recordingApp{}
	// stall the first render so the second frame owes at least one tick
	stall := &stallingApp{recordingApp: app, d: 40 * time.Millisecond}

	require.NoError(t, runWith(stall, win, &fakeRenderer{}))
	assert.GreaterOrEqual(t, app.updates, 1)
	assert.LessOrEqual(t, app.updates, 10)
}

type stallingApp struct {
	*recordingApp
	d time.Duration
}

func (a *stallingApp) OnRender(e *Engine, alpha float64) {
	if a.renders == 0 {
		time.Sleep(a.d)
	}
	a.recordingApp.OnRender(e, alpha)
}

func TestRun_ResizeAndClose(t *testing.T) {
	win := &fakeWindow{frames: 100, w: 800, h: 600}
	win.pending = []Event{EventResize{W: 800, H: 600}, EventKey{Key: KeyEscape, Down: true}}
	rend := &fakeRenderer{}
	app := &recordingApp{onEvent: func(e *Engine, ev Event) {
		if k, ok := ev.(EventKey); ok && k.Key == KeyEscape {
			e.Window.RequestClose()
		}
	}}

	require.NoError(t, runWith(app, win, rend))
	assert.Equal(t, 1, app.renders)
	assert.Len(t, app.events, 2)
	assert.Equal(t, [][2]int{{800, 600}, {800, 600}}, rend.sizes)
}

func TestRun_StartError(t *testing.T) {
	win := &fakeWindow{frames: 5}
	rend := &fakeRenderer{}
	boom := errors.New("manifest missing")
	app := &recordingApp{startErr: boom}

	assert.ErrorIs(t, runWith(app, win, rend), boom)
	assert.Zero(t, app.renders)
	assert.Equal(t, 1, app.shutdowns)
	assert.True(t, rend.shutdown)
	assert.True(t, win.destroyed)
}

func TestRun_RendererInitError(t *testing.T) {
	win := &fakeWindow{frames: 5}
	rend := &fakeRenderer{initErr: errors.New("no gl")}
	app := &recordingApp{}

	assert.Error(t, runWith(app, win, rend))
	assert.Zero(t, app.started)
	assert.False(t, rend.shutdown)
	assert.True(t, win.destroyed)
}
