package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Red Dress", "red-dress"},
		{"  Kids' T-Shirt (XL)  ", "kids-t-shirt-xl"},
		{"Éclair & Co.", "clair-co"},
		{"2024 Summer Collection", "2024-summer-collection"},
		{"!!!", "product"},
		{"", "product"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromName(tc.name), "FromName(%q)", tc.name)
	}
}
