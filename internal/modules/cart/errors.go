package cart

import "errors"

var (
	// ErrDuplicateItem: the product is already in the cart. Adding again is
	// rejected on purpose; callers that want "one more" must use UpdateQty.
	ErrDuplicateItem = errors.New("item already in cart")

	ErrItemNotFound = errors.New("item not in cart")
	ErrBadQty       = errors.New("quantity must be at least 1")
)
