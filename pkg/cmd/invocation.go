// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is registered and
// dispatched (Discord slash, direct message, CLI) is defined by adapters that wrap this.
package cmd

import "context"

// Responder sends a reply back to whoever invoked a command. Image may be nil.
type Responder interface {
	Send(ctx context.Context, recipient, text string, image []byte) error
}

// Invocation carries what any command runner can pass: the caller, free
// arguments, a way to reply, and an opaque transport payload in Data.
type Invocation struct {
	UserID string
	Args   []string
	Reply  Responder
	Data   any
}

// Command is the universal contract: identity plus execution. Transport-specific
// registration stays in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}
