package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"praxis/config"
	"praxis/infras/otel"
	"praxis/internal/domains/appointment/model"
	"praxis/internal/domains/appointment/model/dto"
	"praxis/internal/domains/appointment/repository"
	notificationModel "praxis/internal/domains/notification/model"
	notificationDto "praxis/internal/domains/notification/model/dto"
	notificationService "praxis/internal/domains/notification/service"
	"praxis/shared"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/failure"
	"praxis/shared/timezone"
	"praxis/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

// ScheduleSource resolves the consultation schedule the practice currently
// offers. Implemented by the settings service over site settings with config
// defaults.
type ScheduleSource interface {
	ResolveSchedule(ctx context.Context) (model.Schedule, error)
}

type Appointment interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
}

type serviceImpl struct {
	repo     repository.Appointment
	schedule ScheduleSource
	notifier notificationService.Notification
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Appointment, schedule ScheduleSource, notifier notificationService.Notification, cfg *config.Config, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo:     repo,
		schedule: schedule,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

// Availability enumerates the open slots per day over the requested range,
// clipped to [today, today+horizon]. A range entirely outside the booking
// window yields an empty day list, not an error. Availability is computed
// from live appointment rows on every call; it is never cached.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	schedule, err := s.schedule.ResolveSchedule(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve schedule")

		return res, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	today := timezone.Today()
	horizonEnd := today.AddDate(0, 0, schedule.HorizonDays)

	from, to := today, horizonEnd

	if req.From != constant.Empty {
		if from, err = timezone.Parse(constant.DayFormat, req.From); err != nil {
			return res, failure.BadRequestFromString("invalid from date") //nolint:wrapcheck
		}
	}

	if req.To != constant.Empty {
		if to, err = timezone.Parse(constant.DayFormat, req.To); err != nil {
			return res, failure.BadRequestFromString("invalid to date") //nolint:wrapcheck
		}
	}

	if from.Before(today) {
		from = today
	}

	if to.After(horizonEnd) {
		to = horizonEnd
	}

	res.Days = []dto.DayAvailability{}
	if to.Before(from) {
		return res, nil
	}

	booked, err := s.bookedSlots(ctx, from, to)
	if err != nil {
		return res, err
	}

	res.FromWindow(from, to, schedule.Slots(), booked)

	return res, nil
}

// bookedSlots maps appointment_date to the slot times held by a pending or
// confirmed appointment within [from, to].
func (s *serviceImpl) bookedSlots(ctx context.Context, from, to time.Time) (map[string]map[string]bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  model.FieldAppointmentDate + "_from",
				Field:    model.FieldAppointmentDate,
				Value:    from.Format(constant.DayFormat),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  model.FieldAppointmentDate + "_to",
				Field:    model.FieldAppointmentDate,
				Value:    to.Format(constant.DayFormat),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.BlockingStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldAppointmentDate,
		SortDir: "ASC",
	}

	blocking, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocking appointments")

		return nil, fmt.Errorf("failed to get blocking appointments: %w", err)
	}

	booked := make(map[string]map[string]bool)

	for _, appointment := range blocking {
		date := appointment.AppointmentDate.Format(constant.DayFormat)
		if booked[date] == nil {
			booked[date] = make(map[string]bool)
		}

		booked[date][appointment.AppointmentTime] = true
	}

	return booked, nil
}

// Create validates the intake and writes the appointment when its slot is
// free. Every failing field is reported in one response; the notification
// intent is emitted only after the row is committed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	schedule, err := s.schedule.ResolveSchedule(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve schedule")

		return res, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	if err = s.validateIntake(req, schedule); err != nil {
		return res, err
	}

	appointment, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse appointment request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) //nolint:wrapcheck
	}

	if err = s.repo.CreateIfSlotFree(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return res, failure.Conflict("the requested slot is no longer available") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	go s.notifyCreated(context.WithoutCancel(ctx), appointment)

	res.FromModel(appointment)

	return res, nil
}

// validateIntake merges struct-tag violations with the schedule range checks
// so a bad submission reports all of its failing fields at once.
func (s *serviceImpl) validateIntake(req dto.CreateAppointmentRequest, schedule model.Schedule) error {
	valErr := validator.ValidateStruct(&req)

	fields := failure.GetFields(valErr)
	if valErr != nil && len(fields) == 0 {
		return valErr //nolint:wrapcheck
	}

	dateChecked := true
	timeChecked := true

	for _, field := range fields {
		if field.Field == "appointment_date" {
			dateChecked = false
		}

		if field.Field == "appointment_time" {
			timeChecked = false
		}
	}

	if dateChecked {
		date, err := timezone.Parse(constant.DayFormat, req.AppointmentDate)

		today := timezone.Today()
		horizonEnd := today.AddDate(0, 0, schedule.HorizonDays)

		if err != nil || date.Before(today) || date.After(horizonEnd) {
			fields = append(fields, failure.FieldError{
				Field:   "appointment_date",
				Rule:    failure.RuleRange,
				Message: fmt.Sprintf("appointment_date must be within the next %d days", schedule.HorizonDays),
			})
		}
	}

	if timeChecked && !schedule.Contains(req.AppointmentTime) {
		fields = append(fields, failure.FieldError{
			Field:   "appointment_time",
			Rule:    failure.RuleRange,
			Message: "appointment_time is not an offered slot",
		})
	}

	if len(fields) > 0 {
		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) notifyCreated(ctx context.Context, appointment model.Appointment) {
	date := appointment.AppointmentDate.Format(constant.DayFormat)

	clientIntent := notificationDto.NotificationIntent{
		EventType:     notificationModel.EventAppointmentCreated,
		Recipient:     appointment.ClientEmail,
		Subject:       "We received your appointment request",
		Body:          fmt.Sprintf("<p>Dear %s,</p><p>Your appointment request for %s at %s was received and is pending confirmation. We will be in touch shortly.</p>", appointment.ClientName, date, appointment.AppointmentTime),
		AppointmentID: appointment.ID,
	}

	if err := s.notifier.Notify(ctx, clientIntent); err != nil {
		log.Error().Err(err).Str("id", appointment.ID).Msg("failed to emit client notification")
	}

	adminIntent := notificationDto.NotificationIntent{
		EventType:     notificationModel.EventAppointmentCreated,
		Recipient:     s.cfg.Mail.AdminAddress,
		Subject:       "New appointment request",
		Body:          fmt.Sprintf("<p>%s (%s, %s) requested %s at %s (%s).</p>", appointment.ClientName, appointment.ClientEmail, appointment.ClientPhone, date, appointment.AppointmentTime, appointment.Modality),
		AppointmentID: appointment.ID,
	}

	if err := s.notifier.Notify(ctx, adminIntent); err != nil {
		log.Error().Err(err).Str("id", appointment.ID).Msg("failed to emit admin notification")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
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
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") //nolint:wrapcheck
	}

	res.FromModel(appointment)

	return res, nil
}

// UpdateStatus applies one step of the status lifecycle. Appointments are
// never deleted; cancellation and completion are terminal statuses.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return failure.NotFound("appointment not found") //nolint:wrapcheck
	}

	if !model.CanTransition(appointment.Status, req.Status) {
		return failure.UnprocessableEntity(fmt.Sprintf("cannot transition appointment from %s to %s", appointment.Status, req.Status)) //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	update := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	// Filter on the status we validated against so a concurrent transition
	// turns this write into a no-op instead of clobbering it.
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    appointment.Status,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = s.repo.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to update appointment status")

		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	appointment.Status = req.Status

	go s.notifyStatusChange(context.WithoutCancel(ctx), appointment)

	return nil
}

// notifyStatusChange emits the intent matching the new status. Completion is
// an administrative close; it notifies nobody.
func (s *serviceImpl) notifyStatusChange(ctx context.Context, appointment model.Appointment) {
	date := appointment.AppointmentDate.Format(constant.DayFormat)

	var intent notificationDto.NotificationIntent

	switch appointment.Status {
	case model.StatusConfirmed:
		intent = notificationDto.NotificationIntent{
			EventType:     notificationModel.EventAppointmentConfirmed,
			Recipient:     appointment.ClientEmail,
			Subject:       "Your appointment is confirmed",
			Body:          fmt.Sprintf("<p>Dear %s,</p><p>Your appointment on %s at %s (%s) is confirmed.</p>", appointment.ClientName, date, appointment.AppointmentTime, appointment.Modality),
			AppointmentID: appointment.ID,
		}
	case model.StatusCancelled:
		intent = notificationDto.NotificationIntent{
			EventType:     notificationModel.EventAppointmentCancelled,
			Recipient:     appointment.ClientEmail,
			Subject:       "Your appointment was cancelled",
			Body:          fmt.Sprintf("<p>Dear %s,</p><p>Your appointment on %s at %s was cancelled. Please book a new slot if you still wish to meet.</p>", appointment.ClientName, date, appointment.AppointmentTime),
			AppointmentID: appointment.ID,
		}
	default:
		return
	}

	if err := s.notifier.Notify(ctx, intent); err != nil {
		log.Error().Err(err).Str("id", appointment.ID).Msg("failed to emit status notification")
	}
}
