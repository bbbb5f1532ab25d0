package output

import "context"

// Notifier delivers an action payload to the bot process. Delivery is best
// effort: the returned error reports the outcome and callers may ignore it.
type Notifier interface {
	Send(ctx context.Context, action string, payload any) error
}
