package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutSequencerSharedPerCart(t *testing.T) {
	h := NewCheckoutHandler(nil, nil, nil, nil, nil)

	a := h.sequencer("c1")
	assert.Same(t, a, h.sequencer("c1"))
	assert.NotSame(t, a, h.sequencer("c2"))

	h.drop("c1")
	assert.NotSame(t, a, h.sequencer("c1"))
}

func TestCheckoutSequencerAgesOut(t *testing.T) {
	h := NewCheckoutHandler(nil, nil, nil, nil, nil)
	base := time.Now()
	h.now = func() time.Time { return base }

	a := h.sequencer("c1")

	// use within the TTL resets the idle clock
	h.now = func() time.Time { return base.Add(checkoutIdleTTL / 2) }
	h.sequencer("c1")

	h.now = func() time.Time { return base.Add(checkoutIdleTTL + checkoutIdleTTL/4) }
	assert.Same(t, a, h.sequencer("c1"))

	h.now = func() time.Time { return base.Add(3 * checkoutIdleTTL) }
	assert.NotSame(t, a, h.sequencer("c1"), "abandoned checkouts must age out")
}
