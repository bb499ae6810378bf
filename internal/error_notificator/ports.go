package error_notificator

import "context"

type Notificator interface {
	// Notify reports a fatal error to the operator as a single line.
	Notify(ctx context.Context, err error, details string) error
}
