package model

import (
	"praxis/shared/model"
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldClientName      = "client_name"
	FieldClientEmail     = "client_email"
	FieldClientPhone     = "client_phone"
	FieldAppointmentDate = "appointment_date"
	FieldAppointmentTime = "appointment_time"
	FieldModality        = "modality"
	FieldSubject         = "subject"
	FieldNotes           = "notes"
	FieldStatus          = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	ModalityInPerson = "in-person"
	ModalityOnline   = "online"
)

// BlockingStatuses are the statuses under which an appointment holds its slot.
var BlockingStatuses = []string{StatusPending, StatusConfirmed}

// transitions is the complete status lifecycle. Anything not listed here is
// rejected, and there is no transition out of a terminal status.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// CanTransition reports whether status may move from one value to another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Appointment struct {
	ID              string    `db:"id"`
	ClientName      string    `db:"client_name"`
	ClientEmail     string    `db:"client_email"`
	ClientPhone     string    `db:"client_phone"`
	AppointmentDate time.Time `db:"appointment_date"`
	AppointmentTime string    `db:"appointment_time"`
	Modality        string    `db:"modality"`
	Subject         string    `db:"subject"`
	Notes           string    `db:"notes"`
	Status          string    `db:"status"`
	model.Metadata
}
