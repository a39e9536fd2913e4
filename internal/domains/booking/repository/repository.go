package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"minihotel/infras/otel"
	"minihotel/infras/postgres"
	"minihotel/internal/domains/booking/model"
	gDto "minihotel/shared/dto"
	gRepo "minihotel/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetByRoomID(ctx context.Context, roomID int) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	NextID(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByRoomID returns every booking for a room regardless of status. The
// availability engine decides what counts as a conflict; the store stays a
// thin filter.
func (repo *repositoryImpl) GetByRoomID(ctx context.Context, roomID int) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// DateRangeFilter matches the bookings whose whole stay falls inside
// [start, end]. This is a containment filter, not an overlap test: a stay
// straddling either boundary is excluded.
func DateRangeFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "range_start",
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_end",
				Field:    model.FieldCheckOutDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end,
				Table:    model.TableName,
			},
		},
	}
}
