// Package mailer sends transactional mail. Service is the seam: SMTP for real
// delivery, Mock for tests.
package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string
	From     string

	To []string

	Subject string

	TextBody string
	HTMLBody string
}
