package checkout

import "strings"

// Step of the linear checkout flow. Backward movement is plain navigation in
// the UI and is not modeled here.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepPlaceOrder
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepPlaceOrder:
		return "place_order"
	default:
		return "unknown"
	}
}

type PaymentMethod string

const (
	PaymentPayPal     PaymentMethod = "PayPal"
	PaymentCreditCard PaymentMethod = "CreditCard"
)

func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentPayPal, PaymentCreditCard:
		return true
	}
	return false
}

type ShippingInput struct {
	Address       string
	City          string
	PostalCode    string
	Country       string
	PaymentMethod string
}

// Draft is the order-in-progress the sequencer accumulates; orders.Service
// consumes it when the order is placed.
type Draft struct {
	Address       string
	City          string
	PostalCode    string
	Country       string
	PaymentMethod PaymentMethod
}

// Sequencer is the 3-step machine shipping → payment → place-order. A failed
// gate leaves both step and draft untouched.
type Sequencer struct {
	step  Step
	draft Draft

	onAdvance func(Step)
}

func NewSequencer() *Sequencer {
	return &Sequencer{step: StepShipping}
}

func (s *Sequencer) Step() Step   { return s.step }
func (s *Sequencer) Draft() Draft { return s.draft }

// OnAdvance registers the navigation hook fired after each successful step
// transition (the UI routes and scrolls on it).
func (s *Sequencer) OnAdvance(fn func(Step)) { s.onAdvance = fn }

// SubmitShipping gates shipping → payment. All address fields must be
// non-empty after trimming and the payment method must come from the
// enumerated set. The two failures are distinct so the UI can show the right
// message.
func (s *Sequencer) SubmitShipping(in ShippingInput) error {
	if s.step != StepShipping {
		return ErrWrongStep
	}

	addr := strings.TrimSpace(in.Address)
	city := strings.TrimSpace(in.City)
	postal := strings.TrimSpace(in.PostalCode)
	country := strings.TrimSpace(in.Country)

	if addr == "" || city == "" || postal == "" || country == "" {
		return ErrMissingFields
	}
	if !ValidPaymentMethod(in.PaymentMethod) {
		return ErrMissingPaymentMethod
	}

	s.draft = Draft{
		Address:       addr,
		City:          city,
		PostalCode:    postal,
		Country:       country,
		PaymentMethod: PaymentMethod(in.PaymentMethod),
	}
	s.advance(StepPayment)
	return nil
}

// ConfirmPayment gates payment → place-order. The draft was validated on the
// way in, so the only failure is calling out of order.
func (s *Sequencer) ConfirmPayment() error {
	if s.step != StepPayment {
		return ErrWrongStep
	}
	s.advance(StepPlaceOrder)
	return nil
}

// Reset returns to the first step with an empty draft (after the order is
// placed or the cart is abandoned).
func (s *Sequencer) Reset() {
	s.step = StepShipping
	s.draft = Draft{}
}

func (s *Sequencer) advance(to Step) {
	s.step = to
	if s.onAdvance != nil {
		s.onAdvance(to)
	}
}
