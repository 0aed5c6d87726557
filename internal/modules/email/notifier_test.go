package email

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modakart.com/app/internal/mailer"
	"modakart.com/app/internal/modules/orders"
)

func testNotifier(m *mailer.Mock) *Notifier {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNotifier(m, "no-reply@modakart.test", "Modakart", log)
}

func TestOrderConfirmation(t *testing.T) {
	m := &mailer.Mock{}
	n := testNotifier(m)

	n.OrderConfirmation(context.Background(), "jo@example.com", "Jo", orders.Order{
		ID:            "3f8a2b11-0000-0000-0000-000000000000",
		TotalCents:    12345,
		PaymentMethod: "PayPal",
	})

	require.Len(t, m.Sent, 1)
	e := m.Last()
	assert.Equal(t, []string{"jo@example.com"}, e.To)
	assert.Contains(t, e.Subject, "#3f8a2b11")
	assert.Contains(t, e.TextBody, "$123.45")
	assert.Contains(t, e.TextBody, "PayPal")
}

func TestOrderConfirmationSwallowsSendError(t *testing.T) {
	m := &mailer.Mock{Err: assert.AnError}
	n := testNotifier(m)

	n.OrderConfirmation(context.Background(), "jo@example.com", "Jo", orders.Order{ID: "abc"})
	assert.Len(t, m.Sent, 1)
}

func TestWelcome(t *testing.T) {
	m := &mailer.Mock{}
	n := testNotifier(m)

	n.Welcome(context.Background(), "new@example.com", "New")
	require.Len(t, m.Sent, 1)
	assert.Equal(t, "Welcome to Modakart", m.Last().Subject)
}
