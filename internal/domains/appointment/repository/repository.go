package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"praxis/infras/otel"
	"praxis/infras/postgres"
	"praxis/internal/domains/appointment/model"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/logger"
	gRepo "praxis/shared/repository"

	"github.com/lib/pq"
)

// ErrSlotTaken is returned when the requested slot is already held by a
// pending or confirmed appointment, including the case where a concurrent
// writer won the slot while this insert was in flight.
var ErrSlotTaken = errors.New("slot already booked")

type Appointment interface {
	CreateIfSlotFree(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateIfSlotFree inserts the appointment only if its slot is not held by a
// blocking appointment. The partial unique index on (appointment_date,
// appointment_time) is the authoritative guard, so whichever concurrent
// writer loses gets ErrSlotTaken, never a double booking. The existence
// check up front only keeps the common already-booked case off the index.
func (repo *repositoryImpl) CreateIfSlotFree(ctx context.Context, appointment model.Appointment) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreateIfSlotFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := repo.Exist(ctx, slotFilter(appointment))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if taken {
		return ErrSlotTaken
	}

	if err = repo.Insert(ctx, appointment); err != nil {
		if isSlotConflict(err) {
			return ErrSlotTaken
		}

		logger.ErrorWithStack(err)

		return err //nolint:wrapcheck
	}

	return nil
}

func slotFilter(appointment model.Appointment) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAppointmentDate,
				Value:    appointment.AppointmentDate.Format(constant.DayFormat),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAppointmentTime,
				Value:    appointment.AppointmentTime,
				Operator: gDto.FilterOperatorEq,
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
}

// isSlotConflict reports whether err is the partial unique index rejecting a
// second blocking appointment on the same slot.
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
