package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"minihotel/infras/otel"
	"minihotel/infras/postgres"
	"minihotel/internal/domains/photo/model"
	gDto "minihotel/shared/dto"
	gRepo "minihotel/shared/repository"
)

type Photo interface {
	Insert(ctx context.Context, model model.Photo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Photo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Photo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Photo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Photo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Photo](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
