package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"praxis/infras/otel"
	"praxis/infras/postgres"
	"praxis/internal/domains/post/model"
	gDto "praxis/shared/dto"
	gRepo "praxis/shared/repository"
)

type Post interface {
	Insert(ctx context.Context, model model.Post) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Post, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Post, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Post]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Post {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Post](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
