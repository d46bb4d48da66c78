// Package timeouts centralizes the timeout values handlers use when calling
// out to the document store and the mail relay.
package timeouts

import (
	"context"
	"time"
)

const (
	// Short bounds simple single-document store operations.
	Short = 5 * time.Second

	// Medium bounds multi-step work such as an SMTP conversation or a
	// graceful server shutdown.
	Medium = 10 * time.Second
)

// WithShort derives a context bounded by Short.
func WithShort(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, Short)
}

// WithMedium derives a context bounded by Medium.
func WithMedium(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, Medium)
}
