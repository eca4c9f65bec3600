package dto

import (
	"praxis/internal/domains/notification/model"
	"praxis/shared"
	gDto "praxis/shared/dto"
	gModel "praxis/shared/model"
	"praxis/shared/timezone"

	"github.com/google/uuid"
)

// NotificationIntent is the request to record and send one notification.
// The caller composes the message; dispatch never feeds back into it.
type NotificationIntent struct {
	EventType     string
	Recipient     string
	Subject       string
	Body          string
	AppointmentID string
}

func (i NotificationIntent) ToModel() model.Notification {
	now := timezone.Now()

	return model.Notification{
		ID:            uuid.NewString(),
		EventType:     i.EventType,
		Recipient:     i.Recipient,
		Subject:       i.Subject,
		Body:          i.Body,
		AppointmentID: i.AppointmentID,
		Status:        model.StatusQueued,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

type NotificationResponse struct {
	ID            string `json:"id"`
	EventType     string `json:"event_type"`
	Recipient     string `json:"recipient"`
	Subject       string `json:"subject"`
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.EventType = model.EventType
	r.Recipient = model.Recipient
	r.Subject = model.Subject
	r.AppointmentID = model.AppointmentID
	r.Status = model.Status
	r.Error = model.Error
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
