package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"praxis/config"
	"praxis/infras/otel/mocks"
	settingsMocks "praxis/internal/domains/settings/mocks"
	"praxis/internal/domains/settings/model"
	"praxis/internal/domains/settings/model/dto"
	"praxis/internal/domains/settings/service"
	"praxis/shared/cache"
	cacheMocks "praxis/shared/cache/mocks"
)

func newService(t *testing.T) (service.Settings, *settingsMocks.MockSettings, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.StartTime = "09:00"
	cfg.Booking.EndTime = "17:00"
	cfg.Booking.SlotMinutes = 60
	cfg.Booking.HorizonDays = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestSettingsService_Upsert(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *settingsMocks.MockSettings)
		wantErr   bool
	}{
		{
			name: "creates a new key",
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "updates an existing key",
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)

			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			tt.setupMock(mockRepo)

			err := svc.Upsert(context.Background(), dto.UpsertSettingRequest{
				Key:   "contact.email",
				Value: "hello@example.com",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsService_ResolveSchedule(t *testing.T) {
	tests := []struct {
		name     string
		settings []model.Setting
		want     func(t *testing.T, start, end string, slot, horizon int)
	}{
		{
			name:     "defaults when no rows",
			settings: []model.Setting{},
			want: func(t *testing.T, start, end string, slot, horizon int) {
				assert.Equal(t, "09:00", start)
				assert.Equal(t, "17:00", end)
				assert.Equal(t, 60, slot)
				assert.Equal(t, 60, horizon)
			},
		},
		{
			name: "rows override defaults",
			settings: []model.Setting{
				{Key: model.KeyBookingStartTime, Value: "10:00"},
				{Key: model.KeyBookingEndTime, Value: "16:00"},
				{Key: model.KeyBookingSlotMinutes, Value: "90"},
				{Key: model.KeyBookingHorizonDays, Value: "30"},
			},
			want: func(t *testing.T, start, end string, slot, horizon int) {
				assert.Equal(t, "10:00", start)
				assert.Equal(t, "16:00", end)
				assert.Equal(t, 90, slot)
				assert.Equal(t, 30, horizon)
			},
		},
		{
			name: "invalid numbers fall back to defaults",
			settings: []model.Setting{
				{Key: model.KeyBookingSlotMinutes, Value: "ninety"},
				{Key: model.KeyBookingHorizonDays, Value: "-3"},
			},
			want: func(t *testing.T, start, end string, slot, horizon int) {
				assert.Equal(t, 60, slot)
				assert.Equal(t, 60, horizon)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.settings, nil)

			schedule, err := svc.ResolveSchedule(context.Background())

			assert.NoError(t, err)
			tt.want(t, schedule.StartTime, schedule.EndTime, schedule.SlotMinutes, schedule.HorizonDays)
		})
	}
}

func TestSettingsService_GetPublic(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			{Key: "contact.email", Value: "hello@example.com"},
			{Key: model.KeyBookingStartTime, Value: "10:00"},
		}, nil)

	res, err := svc.GetPublic(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "hello@example.com", res.Settings["contact.email"])
	assert.Equal(t, "10:00", res.Settings[model.KeyBookingStartTime])
}

func TestSettingsService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Delete(context.Background(), "missing.key")

	assert.Error(t, err)
}
