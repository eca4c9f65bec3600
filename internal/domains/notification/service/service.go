package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"praxis/config"
	"praxis/infras/mailer"
	"praxis/infras/otel"
	"praxis/internal/domains/notification/model"
	"praxis/internal/domains/notification/model/dto"
	"praxis/internal/domains/notification/repository"
	"praxis/shared"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Notify(ctx context.Context, intent dto.NotificationIntent) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo   repository.Notification
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Notification, mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// Notify records the intent and hands the send off to a background goroutine.
// A failed send marks the log row failed with the error text; it never reaches
// the operation that triggered the notification.
func (s *serviceImpl) Notify(ctx context.Context, intent dto.NotificationIntent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification := intent.ToModel()

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("event", intent.EventType).Msg("failed to record notification")

		return fmt.Errorf("failed to record notification: %w", err)
	}

	go s.send(context.WithoutCancel(ctx), notification)

	return nil
}

func (s *serviceImpl) send(ctx context.Context, notification model.Notification) {
	status := model.StatusSent
	errText := constant.Empty

	if err := s.mailer.Send(ctx, notification.Recipient, notification.Subject, notification.Body); err != nil {
		log.Error().
			Err(err).
			Str("event", notification.EventType).
			Str("recipient", notification.Recipient).
			Msg("failed to send notification mail")

		status = model.StatusFailed
		errText = err.Error()
	}

	update := map[string]any{
		model.FieldStatus:        status,
		model.FieldError:         errText,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := s.repo.Update(ctx, update, shared.FilterByID(notification.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", notification.ID).Msg("failed to update notification status")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	return res, nil
}
