// Package app provides application lifecycle management, shared state, and
// events.
package app

import (
	"image"
	"sync"

	"engrave-studio/internal/design"
)

// State holds the application state: the login gate, the current design
// options, and the most recent source image. The canvas editor owns its own
// raster and history; State only carries what the UI glue shares.
type State struct {
	mu sync.RWMutex

	// authenticated is a boolean gate with no credential verification;
	// the login screen flips it and nothing else.
	authenticated bool

	options design.Options

	// Last generated or uploaded reference image.
	source image.Image

	// Host-provided callback invoked when the user discards the
	// generated result. Not an editor history operation.
	onResetGeneration func()

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventLoggedIn EventType = iota
	EventImageLoaded
	EventOptionsChanged
	EventGenerationDiscarded
	EventExported
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		options:   design.NewOptions(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Authenticated reports whether the login gate has been passed.
func (s *State) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetAuthenticated flips the login gate.
func (s *State) SetAuthenticated(ok bool) {
	s.mu.Lock()
	s.authenticated = ok
	s.mu.Unlock()
	if ok {
		s.Emit(EventLoggedIn, nil)
	}
}

// Options returns the current design options.
func (s *State) Options() design.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// SetOptions replaces the design options.
func (s *State) SetOptions(opts design.Options) {
	s.mu.Lock()
	s.options = opts
	s.mu.Unlock()
	s.Emit(EventOptionsChanged, opts)
}

// Source returns the current reference image, or nil before the first load.
func (s *State) Source() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// SetSource installs a new reference image (uploaded or generated).
func (s *State) SetSource(img image.Image) {
	s.mu.Lock()
	s.source = img
	s.mu.Unlock()
	s.Emit(EventImageLoaded, img)
}

// SetSourceQuiet replaces the reference image without notifying listeners.
// Used when discarding a generated result, where no reload should happen.
func (s *State) SetSourceQuiet(img image.Image) {
	s.mu.Lock()
	s.source = img
	s.mu.Unlock()
}

// OnResetGeneration registers the host callback for discarding the
// generated result.
func (s *State) OnResetGeneration(callback func()) {
	s.mu.Lock()
	s.onResetGeneration = callback
	s.mu.Unlock()
}

// DiscardGeneration invokes the host's reset callback and notifies
// listeners. The editor's history is untouched.
func (s *State) DiscardGeneration() {
	s.mu.RLock()
	callback := s.onResetGeneration
	s.mu.RUnlock()

	if callback != nil {
		callback()
	}
	s.Emit(EventGenerationDiscarded, nil)
}
