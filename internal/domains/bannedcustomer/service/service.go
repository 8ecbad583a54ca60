package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=BannedCustomer=MockBannedCustomerService

import (
	"context"
	"errors"
	"fmt"

	"wehouse/infras/metrics"
	"wehouse/infras/otel"
	"wehouse/internal/domains/bannedcustomer/model"
	"wehouse/internal/domains/bannedcustomer/model/dto"
	"wehouse/internal/domains/bannedcustomer/repository"
	"wehouse/shared"
	"wehouse/shared/constant"
	gDto "wehouse/shared/dto"
	"wehouse/shared/failure"
	gRepo "wehouse/shared/repository"
	"wehouse/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	MessageBanNotFound    = "Ban record not found"
	MessageInvalidBanData = "Ban record violates schema constraints"
)

type BannedCustomer interface {
	Create(ctx context.Context, req dto.CreateBannedCustomerRequest) (dto.BannedCustomerResponse, error)
	// GetAll returns one page of ban records, newest first. Page and limit
	// are expected to be positive.
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBannedCustomersResponse, error)
	GetByID(ctx context.Context, id string) (dto.BannedCustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.BannedCustomer
	otel otel.Otel
}

func New(repo repository.BannedCustomer, otel otel.Otel) BannedCustomer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBannedCustomerRequest) (res dto.BannedCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bannedCustomer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer := req.ToModel()

	stored, err := s.repo.Insert(ctx, customer)
	if err != nil {
		log.Error().Err(err).Str("customerId", customer.CustomerID).Msg("failed to ban customer")

		switch {
		case errors.Is(err, gRepo.ErrDuplicateKey):
			return res, failure.DuplicateKey(fmt.Sprintf("Customer '%s' is already banned", customer.CustomerID)) //nolint:wrapcheck
		case errors.Is(err, gRepo.ErrConstraint), errors.Is(err, gRepo.ErrInvalidValue):
			return res, failure.BadRequestFromString(MessageInvalidBanData) //nolint:wrapcheck
		default:
			return res, fmt.Errorf("failed to ban customer: %w", err)
		}
	}

	metrics.IncCustomerBanned()

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBannedCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bannedCustomer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = constant.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count banned customers")

		return res, fmt.Errorf("failed to count banned customers: %w", err)
	}

	customers, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get banned customers")

		return res, fmt.Errorf("failed to get banned customers: %w", err)
	}

	res.FromModels(customers, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.BannedCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bannedCustomer.GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIdentifier(id) {
		return res, failure.NotFound(MessageBanNotFound) //nolint:wrapcheck
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(MessageBanNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get banned customer")

		return res, fmt.Errorf("failed to get banned customer: %w", err)
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bannedCustomer.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validator.IsIdentifier(id) {
		return failure.NotFound(MessageBanNotFound) //nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete banned customer")

		return fmt.Errorf("failed to delete banned customer: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(MessageBanNotFound) //nolint:wrapcheck
	}

	metrics.IncCustomerUnbanned()

	return nil
}
