package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"praxis/config"
	"praxis/infras/otel/mocks"
	apptMocks "praxis/internal/domains/appointment/mocks"
	"praxis/internal/domains/appointment/model"
	"praxis/internal/domains/appointment/model/dto"
	"praxis/internal/domains/appointment/repository"
	"praxis/internal/domains/appointment/service"
	svcMocks "praxis/internal/domains/appointment/service/mocks"
	notifMocks "praxis/internal/domains/notification/service/mocks"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/failure"
	"praxis/shared/timezone"
)

func testSchedule() model.Schedule {
	return model.Schedule{
		StartTime:   "09:00",
		EndTime:     "12:00",
		SlotMinutes: 60,
		HorizonDays: 14,
	}
}

func newService(t *testing.T) (service.Appointment, *apptMocks.MockAppointment, *svcMocks.MockScheduleSource, *notifMocks.MockNotification) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := apptMocks.NewMockAppointment(ctrl)
	mockSchedule := svcMocks.NewMockScheduleSource(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Mail.AdminAddress = "practice@example.com"

	svc := service.New(mockRepo, mockSchedule, mockNotifier, cfg, mockOtel)

	return svc, mockRepo, mockSchedule, mockNotifier
}

func validCreateRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		ClientName:      "Maria Santos",
		ClientEmail:     "maria@example.com",
		ClientPhone:     "+351 912 345 678",
		AppointmentDate: timezone.Today().AddDate(0, 0, 7).Format(constant.DayFormat),
		AppointmentTime: "10:00",
		Modality:        model.ModalityOnline,
	}
}

func TestAppointmentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateAppointmentRequest
		setupMock func(repo *apptMocks.MockAppointment)
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validCreateRequest,
			setupMock: func(repo *apptMocks.MockAppointment) {
				repo.EXPECT().
					CreateIfSlotFree(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCode: 0,
		},
		{
			name: "slot conflict maps to 409",
			req:  validCreateRequest,
			setupMock: func(repo *apptMocks.MockAppointment) {
				repo.EXPECT().
					CreateIfSlotFree(gomock.Any(), gomock.Any()).
					Return(repository.ErrSlotTaken)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  validCreateRequest,
			setupMock: func(repo *apptMocks.MockAppointment) {
				repo.EXPECT().
					CreateIfSlotFree(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockSchedule, mockNotifier := newService(t)

			mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)
			mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), tt.req())

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, model.StatusPending, res.Status)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestAppointmentService_Create_ReportsEveryFailingField(t *testing.T) {
	svc, _, mockSchedule, _ := newService(t)

	mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

	req := dto.CreateAppointmentRequest{
		ClientName:      "M",
		ClientEmail:     "not-an-email",
		ClientPhone:     "12345",
		AppointmentDate: timezone.Today().AddDate(0, 0, 30).Format(constant.DayFormat),
		AppointmentTime: "10:17",
		Modality:        "by-phone",
	}

	_, err := svc.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	failing := make(map[string]string, len(fields))
	for _, field := range fields {
		failing[field.Field] = field.Rule
	}

	assert.Equal(t, failure.RuleFormat, failing["client_name"])
	assert.Equal(t, failure.RuleFormat, failing["client_email"])
	assert.Equal(t, failure.RuleFormat, failing["client_phone"])
	assert.Equal(t, failure.RuleEnum, failing["modality"])
	assert.Equal(t, failure.RuleRange, failing["appointment_date"])
	assert.Equal(t, failure.RuleRange, failing["appointment_time"])
}

func TestAppointmentService_Create_RequiredFields(t *testing.T) {
	svc, _, mockSchedule, _ := newService(t)

	mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

	_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)

	required := map[string]bool{}
	for _, field := range fields {
		if field.Rule == failure.RuleRequired {
			required[field.Field] = true
		}
	}

	for _, name := range []string{"client_name", "client_email", "client_phone", "appointment_date", "appointment_time", "modality"} {
		assert.Truef(t, required[name], "expected required violation for %s", name)
	}
}

func TestAppointmentService_Availability(t *testing.T) {
	svc, mockRepo, mockSchedule, _ := newService(t)

	mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

	today := timezone.Today()

	booked := model.Appointment{
		AppointmentDate: today,
		AppointmentTime: "10:00",
		Status:          model.StatusPending,
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Appointment{booked}, nil)

	req := dto.AvailabilityRequest{
		From: today.Format(constant.DayFormat),
		To:   today.AddDate(0, 0, 2).Format(constant.DayFormat),
	}

	res, err := svc.Availability(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, res.Days, 3)

	assert.Equal(t, today.Format(constant.DayFormat), res.Days[0].Date)
	assert.Equal(t, []string{"09:00", "11:00"}, res.Days[0].Slots)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, res.Days[1].Slots)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, res.Days[2].Slots)
}

func TestAppointmentService_Availability_QueriesFullRange(t *testing.T) {
	svc, mockRepo, mockSchedule, _ := newService(t)

	mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

	today := timezone.Today()
	from := today.Format(constant.DayFormat)
	to := today.AddDate(0, 0, 5).Format(constant.DayFormat)

	booked := model.Appointment{
		AppointmentDate: today,
		AppointmentTime: "09:00",
		Status:          model.StatusConfirmed,
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Appointment, error) {
			// Both range bounds must survive into the query under their own
			// named arguments, or bookings before the range end leak back
			// into availability.
			_, args := filter.GetWhereClause()

			assert.Equal(t, from, args["appointment_date_from"])
			assert.Equal(t, to, args["appointment_date_to"])

			return []model.Appointment{booked}, nil
		})

	res, err := svc.Availability(context.Background(), dto.AvailabilityRequest{From: from, To: to})

	assert.NoError(t, err)
	assert.Len(t, res.Days, 6)
	assert.Equal(t, []string{"10:00", "11:00"}, res.Days[0].Slots)
}

func TestAppointmentService_Availability_CancelledDoesNotBlock(t *testing.T) {
	svc, mockRepo, mockSchedule, _ := newService(t)

	mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

	today := timezone.Today()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Appointment, error) {
			// Only pending and confirmed hold a slot, so a cancelled
			// appointment never matches the status filter and its slot
			// is free again.
			_, args := filter.GetWhereClause()

			statuses := []any{}
			for idx := range model.BlockingStatuses {
				statuses = append(statuses, args[fmt.Sprintf("status_%d", idx)])
			}

			assert.ElementsMatch(t, []any{model.StatusPending, model.StatusConfirmed}, statuses)
			assert.NotContains(t, statuses, model.StatusCancelled)

			return []model.Appointment{}, nil
		})

	req := dto.AvailabilityRequest{
		From: today.Format(constant.DayFormat),
		To:   today.Format(constant.DayFormat),
	}

	res, err := svc.Availability(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, res.Days, 1)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, res.Days[0].Slots)
}

func TestAppointmentService_Availability_ClipsToHorizon(t *testing.T) {
	svc, mockRepo, mockSchedule, _ := newService(t)

	mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

	today := timezone.Today()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Appointment{}, nil)

	// Range starts before today and ends beyond the horizon; both ends clip.
	req := dto.AvailabilityRequest{
		From: today.AddDate(0, 0, -5).Format(constant.DayFormat),
		To:   today.AddDate(0, 0, 60).Format(constant.DayFormat),
	}

	res, err := svc.Availability(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, res.Days, 15)
	assert.Equal(t, today.Format(constant.DayFormat), res.Days[0].Date)
	assert.Equal(t, today.AddDate(0, 0, 14).Format(constant.DayFormat), res.Days[len(res.Days)-1].Date)
}

func TestAppointmentService_Availability_OutOfWindowIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		req  func(today string) dto.AvailabilityRequest
	}{
		{
			name: "range entirely past the horizon",
			req: func(string) dto.AvailabilityRequest {
				return dto.AvailabilityRequest{
					From: timezone.Today().AddDate(0, 0, 30).Format(constant.DayFormat),
					To:   timezone.Today().AddDate(0, 0, 40).Format(constant.DayFormat),
				}
			},
		},
		{
			name: "range entirely in the past",
			req: func(string) dto.AvailabilityRequest {
				return dto.AvailabilityRequest{
					From: timezone.Today().AddDate(0, 0, -10).Format(constant.DayFormat),
					To:   timezone.Today().AddDate(0, 0, -5).Format(constant.DayFormat),
				}
			},
		},
		{
			name: "to before from",
			req: func(string) dto.AvailabilityRequest {
				return dto.AvailabilityRequest{
					From: timezone.Today().AddDate(0, 0, 5).Format(constant.DayFormat),
					To:   timezone.Today().AddDate(0, 0, 2).Format(constant.DayFormat),
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockSchedule, _ := newService(t)

			mockSchedule.EXPECT().ResolveSchedule(gomock.Any()).Return(testSchedule(), nil)

			res, err := svc.Availability(context.Background(), tt.req(""))

			assert.NoError(t, err)
			assert.Empty(t, res.Days)
		})
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	appointmentID := "7b0e2ab9-4b55-4a3f-9d2f-2d44f2f0a111"

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(repo *apptMocks.MockAppointment, current model.Appointment)
		wantCode  int
	}{
		{
			name: "pending to confirmed",
			from: model.StatusPending,
			to:   model.StatusConfirmed,
			setupMock: func(repo *apptMocks.MockAppointment, current model.Appointment) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: 0,
		},
		{
			name: "confirmed to completed",
			from: model.StatusConfirmed,
			to:   model.StatusCompleted,
			setupMock: func(repo *apptMocks.MockAppointment, current model.Appointment) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: 0,
		},
		{
			name: "pending to completed is invalid",
			from: model.StatusPending,
			to:   model.StatusCompleted,
			setupMock: func(repo *apptMocks.MockAppointment, current model.Appointment) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "cancelled is terminal",
			from: model.StatusCancelled,
			to:   model.StatusConfirmed,
			setupMock: func(repo *apptMocks.MockAppointment, current model.Appointment) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown appointment",
			from: "",
			to:   model.StatusConfirmed,
			setupMock: func(repo *apptMocks.MockAppointment, current model.Appointment) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Appointment{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockNotifier := newService(t)

			current := model.Appointment{
				ID:              appointmentID,
				ClientName:      "Maria Santos",
				ClientEmail:     "maria@example.com",
				AppointmentDate: timezone.Today().AddDate(0, 0, 7),
				AppointmentTime: "10:00",
				Status:          tt.from,
			}
			if tt.from == "" {
				current = model.Appointment{}
			}

			mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			tt.setupMock(mockRepo, current)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user")
			err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: tt.to}, appointmentID)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestAppointmentService_UpdateStatus_FiltersOnCurrentStatus(t *testing.T) {
	appointmentID := "7b0e2ab9-4b55-4a3f-9d2f-2d44f2f0a111"

	svc, mockRepo, _, mockNotifier := newService(t)

	current := model.Appointment{
		ID:              appointmentID,
		ClientEmail:     "maria@example.com",
		AppointmentDate: timezone.Today().AddDate(0, 0, 7),
		AppointmentTime: "10:00",
		Status:          model.StatusPending,
	}

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ map[string]any, filter gDto.FilterGroup) error {
			// The write must only match the row in the status the transition
			// was validated against, so a concurrent transition makes it a
			// no-op rather than an overwrite.
			_, args := filter.GetWhereClause()

			assert.Equal(t, appointmentID, args["id"])
			assert.Equal(t, model.StatusPending, args["status"])

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user")
	err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: model.StatusConfirmed}, appointmentID)

	assert.NoError(t, err)
}

func TestAppointmentService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newService(t)

	err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: "archived"}, "some-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAppointmentService_GetAll(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	appointments := []model.Appointment{
		{
			ID:              "id-1",
			ClientName:      "Maria Santos",
			AppointmentDate: timezone.Today(),
			AppointmentTime: "09:00",
			Status:          model.StatusPending,
		},
	}

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(appointments, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Appointments, 1)
	assert.Equal(t, "id-1", res.Appointments[0].ID)
}

func TestAppointmentService_Get(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Appointment{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
