package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountNum(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"123456789", false},
		{"12345678901", false},
		{"12345abcde", false},
		{"", false},
	}

	for _, tt := range tests {
		v := New()
		v.AccountNum("fromAccountNum", tt.value)
		assert.Equal(t, tt.valid, v.Valid(), "value %q", tt.value)
	}
}

func TestRoutingNum(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"123456789", true},
		{"12345678", false},
		{"1234567890", false},
		{"12345678x", false},
		{"", false},
	}

	for _, tt := range tests {
		v := New()
		v.RoutingNum("fromRoutingNum", tt.value)
		assert.Equal(t, tt.valid, v.Valid(), "value %q", tt.value)
	}
}

func TestCheckCollectsErrors(t *testing.T) {
	v := New()
	v.Check(false, "a", "bad a")
	v.Check(true, "b", "bad b")
	v.AccountNum("acct", "nope")

	assert.False(t, v.Valid())
	assert.Len(t, v.Errors, 2)
	assert.Equal(t, "bad a", v.Errors["a"])
}
