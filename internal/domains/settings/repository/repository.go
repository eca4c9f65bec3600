package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"praxis/infras/otel"
	"praxis/infras/postgres"
	"praxis/internal/domains/settings/model"
	gDto "praxis/shared/dto"
	gRepo "praxis/shared/repository"
)

type Settings interface {
	Insert(ctx context.Context, model model.Setting) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Setting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Setting, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}
