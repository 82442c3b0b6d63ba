package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cook@EXample.COM", "cook@example.com"},
		{"Cook@EXAMPLE.com", "Cook@example.com"}, // local part untouched
		{"cook@example.com", "cook@example.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in), "input %q", tt.in)
	}
}
