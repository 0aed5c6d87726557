package view

import "modakart.com/app/internal/modules/checkout"

type CheckoutDraft struct {
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
}

type Checkout struct {
	Step  string        `json:"step"`
	Draft CheckoutDraft `json:"draft"`
}

func FromCheckout(step checkout.Step, d checkout.Draft) Checkout {
	return Checkout{
		Step: step.String(),
		Draft: CheckoutDraft{
			Address:       d.Address,
			City:          d.City,
			PostalCode:    d.PostalCode,
			Country:       d.Country,
			PaymentMethod: string(d.PaymentMethod),
		},
	}
}
