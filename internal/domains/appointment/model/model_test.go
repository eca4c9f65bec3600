package model_test

import (
	"praxis/internal/domains/appointment/model"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to completed", from: model.StatusConfirmed, to: model.StatusCompleted, want: true},
		{name: "pending to completed", from: model.StatusPending, to: model.StatusCompleted, want: false},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{name: "same status is not a transition", from: model.StatusPending, to: model.StatusPending, want: false},
		{name: "unknown status", from: "archived", to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
