package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "alice@example.com", want: "alice"},
		{email: "Alice.Smith@example.com", want: "alicesmith"},
		{email: "bob+promo@example.com", want: "bobpromo"},
		{email: "user_42@example.com", want: "user42"},
		{email: "no-at-sign", want: "noatsign"},
		{email: "++@example.com", want: "member"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, UsernameFromEmail(tt.email))
		})
	}
}
