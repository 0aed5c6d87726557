package orders

import "errors"

var (
	ErrEmptyCart      = errors.New("cannot place an order with an empty cart")
	ErrAlreadyPaid    = errors.New("order already marked paid")
	ErrNotPaid        = errors.New("order has not been paid")
	ErrAlreadyShipped = errors.New("order already marked delivered")
)
