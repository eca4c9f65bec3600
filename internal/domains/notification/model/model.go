package model

import (
	"praxis/shared/model"
)

const (
	TableName  = "notification_logs"
	EntityName = "notification"

	FieldID            = "id"
	FieldEventType     = "event_type"
	FieldRecipient     = "recipient"
	FieldSubject       = "subject"
	FieldBody          = "body"
	FieldAppointmentID = "appointment_id"
	FieldStatus        = "status"
	FieldError         = "error"
)

const (
	StatusQueued = "queued"
	StatusSent   = "sent"
	StatusFailed = "failed"
)

const (
	EventAppointmentCreated   = "appointment-created"
	EventAppointmentConfirmed = "appointment-confirmed"
	EventAppointmentCancelled = "appointment-cancelled"
)

type Notification struct {
	ID            string `db:"id"`
	EventType     string `db:"event_type"`
	Recipient     string `db:"recipient"`
	Subject       string `db:"subject"`
	Body          string `db:"body"`
	AppointmentID string `db:"appointment_id"`
	Status        string `db:"status"`
	Error         string `db:"error"`
	model.Metadata
}
