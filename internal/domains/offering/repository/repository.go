package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"praxis/infras/otel"
	"praxis/infras/postgres"
	"praxis/internal/domains/offering/model"
	gDto "praxis/shared/dto"
	gRepo "praxis/shared/repository"
)

type Offering interface {
	Insert(ctx context.Context, model model.Offering) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Offering, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Offering, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Offering]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Offering {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Offering](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
