// Package email builds the transactional messages the store sends and hands
// them to the mailer. Delivery failures are logged, never surfaced to the
// customer flow.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"modakart.com/app/internal/mailer"
	"modakart.com/app/internal/modules/orders"
	"modakart.com/app/pkg/view"
)

type Notifier struct {
	svc      mailer.Service
	from     string
	fromName string
	log      *slog.Logger
}

func NewNotifier(svc mailer.Service, from, fromName string, log *slog.Logger) *Notifier {
	return &Notifier{svc: svc, from: from, fromName: fromName, log: log}
}

// OrderConfirmation is best effort: the order is already placed, a lost email
// must not fail the request.
func (n *Notifier) OrderConfirmation(ctx context.Context, to, name string, o orders.Order) {
	total := view.MoneyFromCents(o.TotalCents, "USD")

	e := mailer.Email{
		From:     n.from,
		FromName: n.fromName,
		To:       []string{to},
		Subject:  fmt.Sprintf("Order confirmation #%s", shortID(o.ID)),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nWe received your order #%s.\nTotal: %s\nPayment method: %s\n\nThank you for shopping with us!\n",
			name, shortID(o.ID), total, o.PaymentMethod,
		),
		HTMLBody: fmt.Sprintf(
			`<html><body style="font-family: sans-serif;">
<h2>Order confirmation</h2>
<p>Hi %s,</p>
<p>We received your order <strong>#%s</strong>.</p>
<p><strong>Total:</strong> %s<br><strong>Payment method:</strong> %s</p>
<p>Thank you for shopping with us!</p>
</body></html>`,
			name, shortID(o.ID), total, o.PaymentMethod,
		),
	}

	if err := n.svc.Send(ctx, e); err != nil {
		n.log.Warn("order confirmation email failed", "order_id", o.ID, "err", err)
	}
}

// Welcome greets a freshly registered account.
func (n *Notifier) Welcome(ctx context.Context, to, name string) {
	e := mailer.Email{
		From:     n.from,
		FromName: n.fromName,
		To:       []string{to},
		Subject:  "Welcome to Modakart",
		TextBody: fmt.Sprintf("Hi %s,\n\nThanks for joining Modakart. Happy shopping!\n", name),
	}
	if err := n.svc.Send(ctx, e); err != nil {
		n.log.Warn("welcome email failed", "email", to, "err", err)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
