package dto

import (
	"praxis/internal/domains/appointment/model"
	"praxis/shared"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	gModel "praxis/shared/model"
	"praxis/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientName      string `json:"client_name"      validate:"required,min=2,max=100"`
	ClientEmail     string `json:"client_email"     validate:"required,email,max=100"`
	ClientPhone     string `json:"client_phone"     validate:"required,phone,max=30"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" validate:"required,slottime"`
	Modality        string `json:"modality"         validate:"required,oneof=in-person online"`
	Subject         string `json:"subject"          validate:"omitempty,max=200"`
	Notes           string `json:"notes"            validate:"omitempty,max=2000"`
}

func (c *CreateAppointmentRequest) ToModel() (model.Appointment, error) {
	appointmentDate, err := timezone.Parse(constant.DayFormat, c.AppointmentDate)
	if err != nil {
		return model.Appointment{}, err
	}

	now := timezone.Now()

	return model.Appointment{
		ID:              uuid.NewString(),
		ClientName:      c.ClientName,
		ClientEmail:     c.ClientEmail,
		ClientPhone:     c.ClientPhone,
		AppointmentDate: appointmentDate,
		AppointmentTime: c.AppointmentTime,
		Modality:        c.Modality,
		Subject:         c.Subject,
		Notes:           c.Notes,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  c.ClientEmail,
			ModifiedBy: c.ClientEmail,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type AppointmentResponse struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Modality        string `json:"modality"`
	Subject         string `json:"subject"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.ClientEmail = model.ClientEmail
	r.ClientPhone = model.ClientPhone
	r.AppointmentDate = model.AppointmentDate.Format(constant.DayFormat)
	r.AppointmentTime = model.AppointmentTime
	r.Modality = model.Modality
	r.Subject = model.Subject
	r.Notes = model.Notes
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

// AvailabilityRequest carries the requested date range. Zero values mean the
// full booking window starting today.
type AvailabilityRequest struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to"   validate:"omitempty,datetime=2006-01-02"`
}

type DayAvailability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type AvailabilityResponse struct {
	Days []DayAvailability `json:"days"`
}

// FromWindow builds the day list for [from, to] from the slot template, minus
// the slots held by blocking appointments.
func (r *AvailabilityResponse) FromWindow(from, to time.Time, template []string, booked map[string]map[string]bool) {
	r.Days = []DayAvailability{}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(constant.DayFormat)

		slots := []string{}
		for _, slot := range template {
			if !booked[date][slot] {
				slots = append(slots, slot)
			}
		}

		r.Days = append(r.Days, DayAvailability{Date: date, Slots: slots})
	}
}
