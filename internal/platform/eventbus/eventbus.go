// Package eventbus provides AMQP publish and consume plumbing for domain
// events. It owns delivery mechanics only; payload semantics belong to the
// services that use it.
package eventbus

import "context"

// Handler processes the raw body of one delivery. Returning nil acknowledges
// the delivery; returning an error rejects it without requeue.
type Handler interface {
	OnEvent(ctx context.Context, body []byte) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, body []byte) error

// OnEvent implements Handler.
func (f HandlerFunc) OnEvent(ctx context.Context, body []byte) error {
	return f(ctx, body)
}

// Publisher publishes a raw event payload to a broker exchange and reports
// success only once the broker has confirmed the message as queued.
type Publisher interface {
	Publish(ctx context.Context, exchange string, body []byte) error
}
