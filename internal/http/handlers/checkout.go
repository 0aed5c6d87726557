package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/cartcookie"
	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/cart"
	"modakart.com/app/internal/modules/checkout"
	"modakart.com/app/internal/modules/email"
	"modakart.com/app/internal/modules/orders"
	"modakart.com/app/internal/modules/users"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/pkg/view"
)

// checkoutIdleTTL evicts abandoned checkout drafts. Longer than the cart
// session TTL so a slow checkout survives; the cart itself is unaffected.
const checkoutIdleTTL = 2 * time.Hour

type seqEntry struct {
	seq      *checkout.Sequencer
	lastSeen time.Time
}

// CheckoutHandler drives the shipping → payment → place-order sequence. One
// sequencer lives per cart session and is dropped once the order is placed;
// abandoned ones age out.
type CheckoutHandler struct {
	orders *orders.Service
	carts  *cart.Manager
	cookie *cartcookie.Codec
	users  *users.Repo
	notify *email.Notifier

	mu   sync.Mutex
	seqs map[string]*seqEntry
	now  func() time.Time
}

func NewCheckoutHandler(ordersSvc *orders.Service, carts *cart.Manager, cookie *cartcookie.Codec, usersRepo *users.Repo, notify *email.Notifier) *CheckoutHandler {
	return &CheckoutHandler{
		orders: ordersSvc,
		carts:  carts,
		cookie: cookie,
		users:  usersRepo,
		notify: notify,
		seqs:   map[string]*seqEntry{},
		now:    time.Now,
	}
}

func (h *CheckoutHandler) sequencer(cartID string) *checkout.Sequencer {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	for id, e := range h.seqs {
		if now.Sub(e.lastSeen) > checkoutIdleTTL {
			delete(h.seqs, id)
		}
	}

	if e, ok := h.seqs[cartID]; ok {
		e.lastSeen = now
		return e.seq
	}
	s := checkout.NewSequencer()
	h.seqs[cartID] = &seqEntry{seq: s, lastSeen: now}
	return s
}

func (h *CheckoutHandler) drop(cartID string) {
	h.mu.Lock()
	delete(h.seqs, cartID)
	h.mu.Unlock()
}

func (h *CheckoutHandler) Show(c *gin.Context) {
	seq := h.sequencer(h.cookie.CartID(c))
	render.OK(c, view.FromCheckout(seq.Step(), seq.Draft()))
}

type shippingReq struct {
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var req shippingReq
	if !bindJSON(c, &req) {
		return
	}

	seq := h.sequencer(h.cookie.CartID(c))
	err := seq.SubmitShipping(checkout.ShippingInput{
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrMissingFields):
			middleware.Fail(c, apperr.InvalidErr("Please fill in all shipping fields.", nil))
		case errors.Is(err, checkout.ErrMissingPaymentMethod):
			middleware.Fail(c, apperr.InvalidErr("Please select a payment method.", nil))
		case errors.Is(err, checkout.ErrWrongStep):
			middleware.Fail(c, apperr.ConflictErr("Checkout is past the shipping step."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}
	render.OK(c, view.FromCheckout(seq.Step(), seq.Draft()))
}

func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	seq := h.sequencer(h.cookie.CartID(c))
	if err := seq.ConfirmPayment(); err != nil {
		middleware.Fail(c, apperr.ConflictErr("Please complete the shipping step first."))
		return
	}
	render.OK(c, view.FromCheckout(seq.Step(), seq.Draft()))
}

func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)
	cartID := h.cookie.CartID(c)

	seq := h.sequencer(cartID)
	if seq.Step() != checkout.StepPlaceOrder {
		middleware.Fail(c, apperr.ConflictErr("Please complete shipping and payment first."))
		return
	}

	st := h.carts.Session(c.Request.Context(), cartID)
	items := st.Snapshot().Items

	o, err := h.orders.PlaceOrder(c.Request.Context(), cu.ID, items, seq.Draft())
	if err != nil {
		var oos *checkout.OutOfStockError
		switch {
		case errors.As(err, &oos):
			middleware.Fail(c, apperr.ConflictErr("Some items in your cart are out of stock."))
		case errors.Is(err, orders.ErrEmptyCart):
			middleware.Fail(c, apperr.InvalidErr("Your cart is empty.", nil))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	st.Clear(c.Request.Context())
	seq.Reset()
	h.drop(cartID)
	h.carts.Drop(cartID)
	h.cookie.Clear(c)

	if u, uerr := h.users.ByID(c.Request.Context(), cu.ID); uerr == nil {
		go h.notify.OrderConfirmation(context.Background(), u.Email, u.Username, o)
	}

	render.Created(c, view.FromOrder(o))
}

func (h *CheckoutHandler) Reset(c *gin.Context) {
	seq := h.sequencer(h.cookie.CartID(c))
	seq.Reset()
	render.OK(c, view.FromCheckout(seq.Step(), seq.Draft()))
}
