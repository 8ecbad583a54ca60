package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"wehouse/infras/otel"
	"wehouse/infras/postgres"
	"wehouse/internal/domains/bannedcustomer/model"
	gDto "wehouse/shared/dto"
	gRepo "wehouse/shared/repository"
)

type BannedCustomer interface {
	Insert(ctx context.Context, model model.BannedCustomer) (model.BannedCustomer, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.BannedCustomer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BannedCustomer, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BannedCustomer]
}

func New(db *postgres.Connection, otel otel.Otel) BannedCustomer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BannedCustomer](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
