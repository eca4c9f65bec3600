package model_test

import (
	"praxis/internal/domains/appointment/model"
	"reflect"
	"testing"
)

func TestScheduleSlots(t *testing.T) {
	tests := []struct {
		name     string
		schedule model.Schedule
		want     []string
	}{
		{
			name:     "hourly working day",
			schedule: model.Schedule{StartTime: "09:00", EndTime: "17:00", SlotMinutes: 60},
			want:     []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		},
		{
			name:     "ninety minute sessions",
			schedule: model.Schedule{StartTime: "09:00", EndTime: "13:00", SlotMinutes: 90},
			want:     []string{"09:00", "10:30"},
		},
		{
			name:     "last slot must fit before closing",
			schedule: model.Schedule{StartTime: "09:00", EndTime: "10:30", SlotMinutes: 60},
			want:     []string{"09:00"},
		},
		{
			name:     "end before start",
			schedule: model.Schedule{StartTime: "17:00", EndTime: "09:00", SlotMinutes: 60},
			want:     nil,
		},
		{
			name:     "zero slot length",
			schedule: model.Schedule{StartTime: "09:00", EndTime: "17:00", SlotMinutes: 0},
			want:     nil,
		},
		{
			name:     "unparseable times",
			schedule: model.Schedule{StartTime: "morning", EndTime: "evening", SlotMinutes: 60},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schedule.Slots(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleContains(t *testing.T) {
	schedule := model.Schedule{StartTime: "09:00", EndTime: "12:00", SlotMinutes: 60}

	if !schedule.Contains("10:00") {
		t.Error("expected 10:00 to be an offered slot")
	}

	if schedule.Contains("10:30") {
		t.Error("expected 10:30 not to be an offered slot")
	}

	if schedule.Contains("12:00") {
		t.Error("expected 12:00 not to be an offered slot, no session fits before closing")
	}
}
