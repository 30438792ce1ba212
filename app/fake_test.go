package app

import (
	"strings"
	"sync"

	"sparkcalc/hal"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newMemFB(w, h int) *memFB {
	return &memFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}

func (f *memFB) Present() error {
	f.presents++
	return nil
}

type logLines struct {
	mu    sync.Mutex
	lines []string
}

func (l *logLines) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *logLines) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *logLines) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakePointer struct{ ch chan hal.PointerEvent }

func (p fakePointer) Events() <-chan hal.PointerEvent { return p.ch }

type fakeInput struct {
	kbd fakeKeyboard
	ptr fakePointer
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }
func (in fakeInput) Pointer() hal.Pointer   { return in.ptr }

type fakeTime struct{ ch chan uint64 }

func (t fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeHAL struct {
	fb    *memFB
	log   *logLines
	keys  chan hal.KeyEvent
	ptrs  chan hal.PointerEvent
	ticks chan uint64
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:    newMemFB(hal.ScreenWidth, hal.ScreenHeight),
		log:   &logLines{},
		keys:  make(chan hal.KeyEvent, 64),
		ptrs:  make(chan hal.PointerEvent, 16),
		ticks: make(chan uint64, 64),
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Time() hal.Time       { return fakeTime{ch: h.ticks} }

func (h *fakeHAL) Input() hal.Input {
	return fakeInput{kbd: fakeKeyboard{ch: h.keys}, ptr: fakePointer{ch: h.ptrs}}
}

func (h *fakeHAL) typeRunes(s string) {
	for _, r := range s {
		h.keys <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func (h *fakeHAL) key(code hal.KeyCode) {
	h.keys <- hal.KeyEvent{Code: code, Press: true}
	h.keys <- hal.KeyEvent{Code: code, Press: false}
}
