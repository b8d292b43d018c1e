// Package debugui is the Dear ImGui control panel for the ocean viewer.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and ImGui context. OpenGL functions must
// be loaded by the caller before any GL call.
//
// Window flags are creation hints for the SDL backend, so fullscreen can
// only be chosen here; the window cannot switch modes afterwards.
func NewBackend(title string, width, height int, fullscreen bool) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1))
	createWindow(b.backend, title, width, height, fullscreen)
	return b, nil
}

// windowCreator is the part of the backend that opens the window.
type windowCreator interface {
	SetWindowFlags(flag sdlbackend.SDLWindowFlags, value int)
	CreateWindow(title string, width, height int)
}

// createWindow sets the creation flags, then opens the window.
func createWindow(w windowCreator, title string, width, height int, fullscreen bool) {
	if fullscreen {
		w.SetWindowFlags(sdlbackend.SDLWindowFlags(sdl.WINDOW_FULLSCREEN_DESKTOP), 1)
	}
	w.CreateWindow(title, width, height)
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Close asks the render loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}
