package cartcookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	c := New([]byte("secret"), "mk_cart", false)

	v := c.Encode("cart-123")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "cart-123", id)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret"), "mk_cart", false)
	v := c.Encode("cart-123")

	_, err := c.Decode("cart-999." + v[len("cart-123."):])
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	a := New([]byte("secret-a"), "mk_cart", false)
	b := New([]byte("secret-b"), "mk_cart", false)

	_, err := b.Decode(a.Encode("cart-123"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	c := New([]byte("secret"), "mk_cart", false)
	for _, v := range []string{"", "noparts", ".onlysig", "a.b.c"} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, "value=%q", v)
	}
}
