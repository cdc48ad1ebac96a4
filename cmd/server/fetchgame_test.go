package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAccessible(t *testing.T) {
	owner := int64(1)
	other := int64(2)

	tests := []struct {
		name             string
		owner, requester *int64
		want             bool
	}{
		{"anonymous session, anonymous caller", nil, nil, true},
		{"anonymous session, logged-in caller", nil, &other, true},
		{"owned session, owner", &owner, &owner, true},
		{"owned session, other player", &owner, &other, false},
		{"owned session, anonymous caller", &owner, nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, sessionAccessible(test.owner, test.requester))
		})
	}
}
