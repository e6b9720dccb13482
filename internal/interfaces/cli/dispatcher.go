package cli

import (
	"context"
	"errors"
)

// errExit stops the main menu loop
var errExit = errors.New("exit")

// HandlerFunc handles one main menu option
type HandlerFunc func(ctx context.Context) error

// Dispatcher routes menu choices to their handlers
type Dispatcher interface {
	// RegisterHandler registers a handler for a menu option
	RegisterHandler(option string, handler HandlerFunc)
	// Dispatch runs the handler registered for option
	Dispatch(ctx context.Context, option string) error
	// Options returns the registered options in registration order
	Options() []string
}

// NewDispatcher creates a new dispatcher instance
func NewDispatcher() Dispatcher {
	return &defaultDispatcher{
		handlers: make(map[string]HandlerFunc),
	}
}

type defaultDispatcher struct {
	handlers map[string]HandlerFunc
	options  []string
}

func (d *defaultDispatcher) RegisterHandler(option string, handler HandlerFunc) {
	if _, exists := d.handlers[option]; !exists {
		d.options = append(d.options, option)
	}
	d.handlers[option] = handler
}

func (d *defaultDispatcher) Dispatch(ctx context.Context, option string) error {
	handler, exists := d.handlers[option]
	if !exists {
		return nil
	}
	return handler(ctx)
}

func (d *defaultDispatcher) Options() []string {
	return append([]string(nil), d.options...)
}
