package model

import (
	"praxis/shared/model"
)

const (
	TableName  = "site_settings"
	EntityName = "setting"

	FieldKey   = "key"
	FieldValue = "value"
)

// Booking schedule keys. Values override the config defaults when present.
const (
	KeyBookingStartTime   = "booking.start_time"
	KeyBookingEndTime     = "booking.end_time"
	KeyBookingSlotMinutes = "booking.slot_minutes"
	KeyBookingHorizonDays = "booking.horizon_days"
)

// PublicKeys are the settings the marketing site may read without auth.
var PublicKeys = []string{
	"contact.email",
	"contact.phone",
	"contact.address",
	"social.instagram",
	"social.linkedin",
	KeyBookingStartTime,
	KeyBookingEndTime,
	KeyBookingSlotMinutes,
	KeyBookingHorizonDays,
}

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
