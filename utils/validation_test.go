package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "(11) 98765-4321", want: "+5511987654321", wantOK: true},
		{in: "011 98765 4321", want: "+5511987654321", wantOK: true},
		{in: "21 3456-7890", want: "+552134567890", wantOK: true},
		{in: "+1 415 555 2671", want: "+14155552671", wantOK: true},
		{in: "0044 20 7946 0958", want: "+442079460958", wantOK: true},
		{in: "12345", wantOK: false},
		{in: "+0123456789", wantOK: false},
		{in: "call me", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizePhone(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateRandomString(t *testing.T) {
	code := GenerateRandomString(6)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}
	assert.NotContains(t, codeAlphabet, "O")
	assert.NotContains(t, codeAlphabet, "0")
}
