package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"praxis/config"
	mailerMocks "praxis/infras/mailer/mocks"
	"praxis/infras/otel/mocks"
	notifMocks "praxis/internal/domains/notification/mocks"
	"praxis/internal/domains/notification/model"
	"praxis/internal/domains/notification/model/dto"
	"praxis/internal/domains/notification/service"
	gDto "praxis/shared/dto"
)

func newService(t *testing.T) (service.Notification, *notifMocks.MockNotification, *mailerMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := notifMocks.NewMockNotification(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMailer, cfg, mockOtel)

	return svc, mockRepo, mockMailer
}

func testIntent() dto.NotificationIntent {
	return dto.NotificationIntent{
		EventType:     model.EventAppointmentCreated,
		Recipient:     "maria@example.com",
		Subject:       "We received your appointment request",
		Body:          "<p>pending confirmation</p>",
		AppointmentID: "appointment-1",
	}
}

func TestNotificationService_Notify_RecordsThenSends(t *testing.T) {
	svc, mockRepo, mockMailer := newService(t)

	var inserted model.Notification

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notification model.Notification) error {
			inserted = notification
			return nil
		})

	sent := make(chan struct{})

	mockMailer.EXPECT().
		Send(gomock.Any(), "maria@example.com", "We received your appointment request", gomock.Any()).
		Return(nil)

	updated := make(chan map[string]any, 1)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update map[string]any, _ gDto.FilterGroup) error {
			updated <- update
			close(sent)
			return nil
		})

	err := svc.Notify(context.Background(), testIntent())

	assert.NoError(t, err)
	assert.Equal(t, model.StatusQueued, inserted.Status)
	assert.Equal(t, model.EventAppointmentCreated, inserted.EventType)

	select {
	case update := <-updated:
		assert.Equal(t, model.StatusSent, update[model.FieldStatus])
		assert.Equal(t, "", update[model.FieldError])
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatch")
	}

	<-sent
}

func TestNotificationService_Notify_SendFailureRecordedOnRow(t *testing.T) {
	svc, mockRepo, mockMailer := newService(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unreachable"))

	updated := make(chan map[string]any, 1)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update map[string]any, _ gDto.FilterGroup) error {
			updated <- update
			return nil
		})

	// A failing send never surfaces to the caller.
	err := svc.Notify(context.Background(), testIntent())
	assert.NoError(t, err)

	select {
	case update := <-updated:
		assert.Equal(t, model.StatusFailed, update[model.FieldStatus])
		assert.Equal(t, "smtp unreachable", update[model.FieldError])
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatch")
	}
}

func TestNotificationService_Notify_InsertFailure(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	err := svc.Notify(context.Background(), testIntent())

	assert.Error(t, err)
}

func TestNotificationService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	logs := []model.Notification{
		{ID: "n-1", EventType: model.EventAppointmentConfirmed, Status: model.StatusSent},
	}

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(logs, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Notifications, 1)
	assert.Equal(t, model.StatusSent, res.Notifications[0].Status)
}
