package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsSlotConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation is a slot conflict",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped unique violation is a slot conflict",
			err:  fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"}),
			want: true,
		},
		{
			name: "serialization abort is not a slot conflict",
			err:  &pq.Error{Code: "40001"},
			want: false,
		},
		{
			name: "foreign key violation is not a slot conflict",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "plain error is not a slot conflict",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSlotConflict(tt.err); got != tt.want {
				t.Errorf("isSlotConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
