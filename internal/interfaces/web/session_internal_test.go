package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNextPath(t *testing.T) {
	cases := []struct {
		next string
		ok   bool
	}{
		{"/cart", true},
		{"/admin-dashboard", true},
		{"/", true},
		{"", false},
		{"//evil.example", false},
		{"http://evil.example/", false},
		{"https://evil.example/cart", false},
		{"cart", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, safeNextPath(tc.next), "next=%q", tc.next)
	}
}
