// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     engine
// Description: Transform session with undo history, shared by all hosts
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package engine couples the transform catalog with one undo stack. An
// Engine is one editing session: hosts keep the buffer, call Apply (or
// RecordBeforeMutation followed by ApplyTransform) to change it and Undo
// to restore the previous content.
//
// All methods are safe for concurrent use.
package engine

import (
	"sync"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/history"
	"github.com/msto63/wandler/internal/transform"
	"github.com/msto63/wandler/pkg/core/logging"
)

// Outcome is the result of Apply
type Outcome struct {
	// Text is the new buffer, or the unchanged buffer when nothing was applied
	Text string `json:"text"`

	// Applied reports whether the buffer changed hands and a history entry
	// was recorded
	Applied bool `json:"applied"`
}

// Option configures an Engine
type Option func(*Engine)

// WithCatalog replaces the built-in catalog
func WithCatalog(c *transform.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithID sets the session id instead of generating one
func WithID(id string) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// Engine is one transform session
type Engine struct {
	id      string
	catalog *transform.Catalog
	history *history.Stack
	logger  *logging.Logger
	mu      sync.Mutex
}

// New creates a session with an empty history
func New(opts ...Option) *Engine {
	e := &Engine{
		catalog: transform.Default(),
		history: history.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id == "" {
		e.id = uuid.New().String()
	}
	if e.logger == nil {
		e.logger = logging.New("engine")
	}
	e.logger = e.logger.WithSession(e.id)
	return e
}

// ID returns the session id
func (e *Engine) ID() string {
	return e.id
}

// Catalog returns the catalog the session dispatches to
func (e *Engine) Catalog() *transform.Catalog {
	return e.catalog
}

// ApplyTransform runs a transform without touching the history
func (e *Engine) ApplyTransform(id transform.ID, input string, args transform.Args) (string, error) {
	out, err := e.catalog.Apply(id, input, args)
	if err != nil {
		return "", e.tag(err)
	}
	return out, nil
}

// RecordBeforeMutation pushes the buffer content that is about to be replaced
func (e *Engine) RecordBeforeMutation(current string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Push(current)
	e.logger.Debug("history recorded", "depth", e.history.Len())
}

// Undo pops the most recent buffer content. ok is false when there is
// nothing to undo.
func (e *Engine) Undo() (previous string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	previous, ok = e.history.Pop()
	if !ok {
		e.logger.Debug("nothing to undo")
		return "", false
	}
	e.logger.Debug("undo", "depth", e.history.Len())
	return previous, true
}

// CanUndo reports whether Undo would restore something
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}

// Depth returns the number of recorded history entries
func (e *Engine) Depth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

// State returns the history state
func (e *Engine) State() history.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.State()
}

// Apply transforms buffer and records it in the history on success.
//
// Nothing is recorded when the transform does not exist, when a regular
// transform is asked to work on an empty buffer, when the regex pattern is
// empty, or when the transform fails. Errors leave buffer and history
// untouched.
func (e *Engine) Apply(id transform.ID, buffer string, args transform.Args) (Outcome, error) {
	entry, ok := e.catalog.Lookup(id)
	if !ok {
		return Outcome{Text: buffer}, e.tag(transform.NewUnknownTransformError(id))
	}

	if entry.NeedsPattern && args.Pattern == "" {
		return Outcome{Text: buffer}, nil
	}
	if !entry.NeedsPattern && buffer == "" {
		return Outcome{Text: buffer}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := entry.Apply(buffer, args)
	if err != nil {
		e.logger.Debug("transform failed", "transform", string(id), "error", err.Error())
		return Outcome{Text: buffer}, e.tag(err)
	}

	e.history.Push(buffer)
	e.logger.Debug("transform applied",
		"transform", string(id),
		"depth", e.history.Len(),
	)
	return Outcome{Text: out, Applied: true}, nil
}

// tag attaches the session id to structured errors
func (e *Engine) tag(err error) error {
	if me, ok := err.(*mdwerror.Error); ok {
		return me.WithSessionID(e.id)
	}
	return err
}
