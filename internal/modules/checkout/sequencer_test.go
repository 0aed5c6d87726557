package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() ShippingInput {
	return ShippingInput{
		Address:       "12 Harbour Rd",
		City:          "Izmir",
		PostalCode:    "35000",
		Country:       "TR",
		PaymentMethod: "PayPal",
	}
}

func TestSubmitShippingHappyPath(t *testing.T) {
	s := NewSequencer()
	require.Equal(t, StepShipping, s.Step())

	require.NoError(t, s.SubmitShipping(validShipping()))
	assert.Equal(t, StepPayment, s.Step())

	d := s.Draft()
	assert.Equal(t, "12 Harbour Rd", d.Address)
	assert.Equal(t, PaymentPayPal, d.PaymentMethod)
}

func TestSubmitShippingTrimsFields(t *testing.T) {
	s := NewSequencer()
	in := validShipping()
	in.City = "  Izmir  "
	require.NoError(t, s.SubmitShipping(in))
	assert.Equal(t, "Izmir", s.Draft().City)
}

func TestSubmitShippingMissingFields(t *testing.T) {
	cases := map[string]func(*ShippingInput){
		"address":     func(in *ShippingInput) { in.Address = "" },
		"city":        func(in *ShippingInput) { in.City = "   " },
		"postal code": func(in *ShippingInput) { in.PostalCode = "" },
		"country":     func(in *ShippingInput) { in.Country = "\t" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewSequencer()
			in := validShipping()
			mutate(&in)

			err := s.SubmitShipping(in)
			require.ErrorIs(t, err, ErrMissingFields)
			assert.Equal(t, StepShipping, s.Step(), "failed gate must not advance")
			assert.Empty(t, s.Draft().Address, "failed gate must not persist the draft")
		})
	}
}

func TestSubmitShippingMissingPaymentMethod(t *testing.T) {
	for _, method := range []string{"", "Bitcoin", "paypal"} {
		s := NewSequencer()
		in := validShipping()
		in.PaymentMethod = method

		err := s.SubmitShipping(in)
		require.ErrorIs(t, err, ErrMissingPaymentMethod, "method=%q", method)
		assert.Equal(t, StepShipping, s.Step())
	}
}

func TestMissingFieldsCheckedBeforePayment(t *testing.T) {
	// both problems at once: the field failure wins, matching the original
	// form's validation order
	s := NewSequencer()
	err := s.SubmitShipping(ShippingInput{PaymentMethod: ""})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestConfirmPayment(t *testing.T) {
	s := NewSequencer()

	require.ErrorIs(t, s.ConfirmPayment(), ErrWrongStep)

	require.NoError(t, s.SubmitShipping(validShipping()))
	require.NoError(t, s.ConfirmPayment())
	assert.Equal(t, StepPlaceOrder, s.Step())

	require.ErrorIs(t, s.ConfirmPayment(), ErrWrongStep)
}

func TestSubmitShippingOutOfOrder(t *testing.T) {
	s := NewSequencer()
	require.NoError(t, s.SubmitShipping(validShipping()))
	assert.ErrorIs(t, s.SubmitShipping(validShipping()), ErrWrongStep)
}

func TestOnAdvanceHook(t *testing.T) {
	s := NewSequencer()
	var steps []Step
	s.OnAdvance(func(st Step) { steps = append(steps, st) })

	_ = s.SubmitShipping(ShippingInput{}) // rejected, no event
	require.NoError(t, s.SubmitShipping(validShipping()))
	require.NoError(t, s.ConfirmPayment())

	assert.Equal(t, []Step{StepPayment, StepPlaceOrder}, steps)
}

func TestReset(t *testing.T) {
	s := NewSequencer()
	require.NoError(t, s.SubmitShipping(validShipping()))
	require.NoError(t, s.ConfirmPayment())

	s.Reset()
	assert.Equal(t, StepShipping, s.Step())
	assert.Equal(t, Draft{}, s.Draft())
}
