package model

import (
	"praxis/shared/constant"
	"time"
)

// Schedule is the consultation slot template the practice offers. It is
// resolved from site settings with config defaults, never read globally.
type Schedule struct {
	StartTime   string
	EndTime     string
	SlotMinutes int
	HorizonDays int
}

// Slots enumerates the slot start times of a working day in ascending order.
// A slot is offered only when it fits entirely before the end of the day.
func (s Schedule) Slots() []string {
	start, err := time.Parse(constant.SlotTimeFormat, s.StartTime)
	if err != nil {
		return nil
	}

	end, err := time.Parse(constant.SlotTimeFormat, s.EndTime)
	if err != nil || !end.After(start) || s.SlotMinutes <= 0 {
		return nil
	}

	duration := time.Duration(s.SlotMinutes) * time.Minute

	var slots []string
	for t := start; !t.Add(duration).After(end); t = t.Add(duration) {
		slots = append(slots, t.Format(constant.SlotTimeFormat))
	}

	return slots
}

// Contains reports whether the given "HH:MM" time is a slot of the template.
func (s Schedule) Contains(slot string) bool {
	for _, candidate := range s.Slots() {
		if candidate == slot {
			return true
		}
	}

	return false
}
