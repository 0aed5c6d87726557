package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields: one of address/city/postal-code/country is empty
	// after trimming.
	ErrMissingFields = errors.New("all shipping fields are required")

	// ErrMissingPaymentMethod: no payment method, or one outside the
	// enumerated set. Kept distinct from ErrMissingFields so the UI can say
	// which thing is wrong.
	ErrMissingPaymentMethod = errors.New("please choose a payment method")

	ErrWrongStep = errors.New("checkout step called out of order")
)

type OutOfStockItem struct {
	ProductID string
	Requested int
	Available int
}

type OutOfStockError struct {
	Items []OutOfStockItem
}

func (e *OutOfStockError) Error() string {
	if len(e.Items) == 0 {
		return "out of stock"
	}
	it := e.Items[0]
	return fmt.Sprintf("out of stock: product=%s requested=%d available=%d", it.ProductID, it.Requested, it.Available)
}
