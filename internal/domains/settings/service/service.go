package service

import (
	"context"
	"fmt"
	"praxis/config"
	"praxis/infras/otel"
	apptModel "praxis/internal/domains/appointment/model"
	"praxis/internal/domains/settings/model"
	"praxis/internal/domains/settings/model/dto"
	"praxis/internal/domains/settings/repository"
	"praxis/shared"
	"praxis/shared/cache"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSetting = "setting:gets"
	cachePublicSetting = "setting:public"
)

type Settings interface {
	Upsert(ctx context.Context, req dto.UpsertSettingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSettingsResponse, error)
	Get(ctx context.Context, key string) (dto.SettingResponse, error)
	GetPublic(ctx context.Context) (dto.PublicSettingsResponse, error)
	Delete(ctx context.Context, key string) error
	ResolveSchedule(ctx context.Context) (apptModel.Schedule, error)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByKey(key string) gDto.FilterGroup {
	return shared.FilterByID(key, model.FieldKey, model.TableName)
}

func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertSettingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterByKey(req.Key))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	if exist {
		updatedFields := shared.TransformFields(struct {
			Value string `db:"value"`
		}{req.Value}, user)

		if err = s.repo.Update(ctx, updatedFields, filterByKey(req.Key)); err != nil {
			log.Error().Err(err).Msg("failed to update setting")

			return fmt.Errorf("failed to update setting: %w", err)
		}
	} else if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create setting")

		return fmt.Errorf("failed to create setting: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSetting)
		shared.InvalidateCaches(c, s.cache, cachePublicSetting)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSetting, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for settings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count settings")

		return res, fmt.Errorf("failed to count settings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	setting, err := s.repo.Get(ctx, filterByKey(key))
	if err != nil {
		log.Error().Err(err).Msg("failed to get setting")

		return res, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Key == constant.Empty {
		return res, failure.NotFound("setting not found") //nolint:wrapcheck
	}

	res.FromModel(setting)

	return res, nil
}

// GetPublic returns the whitelisted settings the marketing site renders.
func (s *serviceImpl) GetPublic(ctx context.Context) (res dto.PublicSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePublicSetting)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for public settings")

		return res, nil
	}

	models, err := s.publicSettings(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save public settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publicSettings(ctx context.Context) ([]model.Setting, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKey,
				Value:    model.PublicKeys,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldKey,
		SortDir: "ASC",
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get public settings")

		return nil, fmt.Errorf("failed to get public settings: %w", err)
	}

	return models, nil
}

func (s *serviceImpl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, filterByKey(key))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	if !exist {
		return failure.NotFound("setting not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filterByKey(key)); err != nil {
		log.Error().Err(err).Msg("failed to delete setting")

		return fmt.Errorf("failed to delete setting: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSetting)
		shared.InvalidateCaches(c, s.cache, cachePublicSetting)
	}()

	return nil
}

// ResolveSchedule builds the consultation schedule from the booking keys,
// falling back to the config defaults for any key that is absent or invalid.
// It reads live rows so a schedule change is visible on the next request.
func (s *serviceImpl) ResolveSchedule(ctx context.Context) (schedule apptModel.Schedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	schedule = apptModel.Schedule{
		StartTime:   s.cfg.Booking.StartTime,
		EndTime:     s.cfg.Booking.EndTime,
		SlotMinutes: s.cfg.Booking.SlotMinutes,
		HorizonDays: s.cfg.Booking.HorizonDays,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field: model.FieldKey,
				Value: []string{
					model.KeyBookingStartTime,
					model.KeyBookingEndTime,
					model.KeyBookingSlotMinutes,
					model.KeyBookingHorizonDays,
				},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule settings")

		return schedule, fmt.Errorf("failed to get schedule settings: %w", err)
	}

	for _, setting := range models {
		switch setting.Key {
		case model.KeyBookingStartTime:
			schedule.StartTime = setting.Value
		case model.KeyBookingEndTime:
			schedule.EndTime = setting.Value
		case model.KeyBookingSlotMinutes:
			schedule.SlotMinutes = parsePositiveInt(setting.Key, setting.Value, schedule.SlotMinutes)
		case model.KeyBookingHorizonDays:
			schedule.HorizonDays = parsePositiveInt(setting.Key, setting.Value, schedule.HorizonDays)
		}
	}

	return schedule, nil
}

func parsePositiveInt(key, value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid schedule setting, using default")

		return fallback
	}

	return parsed
}
