package sitetimesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"draft to submitted", StatusDraft, StatusSubmitted, true},
		{"draft to authorized", StatusDraft, StatusAuthorized, false},
		{"draft to rejected", StatusDraft, StatusRejected, false},
		{"submitted to authorized", StatusSubmitted, StatusAuthorized, true},
		{"submitted to rejected", StatusSubmitted, StatusRejected, true},
		{"submitted to draft", StatusSubmitted, StatusDraft, false},
		{"authorized is terminal", StatusAuthorized, StatusSubmitted, false},
		{"authorized to rejected", StatusAuthorized, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusSubmitted, false},
		{"rejected to authorized", StatusRejected, StatusAuthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
	assert.True(t, StatusAuthorized.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusDraft.IsValid())
	assert.True(t, StatusSubmitted.IsValid())
	assert.True(t, StatusAuthorized.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, Status("pending").IsValid())
	assert.False(t, Status("").IsValid())
}
