package ports

import "context"

// Notifier is the notification gateway that texts a customer.
type Notifier interface {
	// Send delivers message to phoneNumber. A carrier rejection fails with errs.DeliveryFailedError.
	Send(ctx context.Context, phoneNumber, message string) error
}
