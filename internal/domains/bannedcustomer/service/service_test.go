package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wehouse/infras/otel/mocks"
	bannedMocks "wehouse/internal/domains/bannedcustomer/mocks"
	"wehouse/internal/domains/bannedcustomer/model"
	"wehouse/internal/domains/bannedcustomer/model/dto"
	"wehouse/internal/domains/bannedcustomer/service"
	"wehouse/shared/constant"
	gDto "wehouse/shared/dto"
	"wehouse/shared/failure"
	gModel "wehouse/shared/model"
	gRepo "wehouse/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const banID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

func newService(t *testing.T) (service.BannedCustomer, *bannedMocks.MockBannedCustomer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := bannedMocks.NewMockBannedCustomer(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func assertFailure(t *testing.T, err error, code int, message string) {
	t.Helper()

	fail, ok := failure.As(err)
	require.True(t, ok, "expected a failure, got %v", err)
	assert.Equal(t, code, fail.Code)
	assert.Equal(t, message, fail.Message)
}

func records(n int) []model.BannedCustomer {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	res := make([]model.BannedCustomer, n)

	for i := range res {
		stamp := base.Add(-time.Duration(i) * time.Hour)
		res[i] = model.BannedCustomer{
			ID:         fmt.Sprintf("id-%d", i),
			CustomerID: fmt.Sprintf("customer-%d", i),
			Reason:     "Repeated late cancellations",
			Metadata:   gModel.Metadata{CreatedAt: stamp, UpdatedAt: stamp},
		}
	}

	return res
}

func TestBannedCustomerService_Create(t *testing.T) {
	req := dto.CreateBannedCustomerRequest{CustomerID: "customer-1", Reason: "Damaged the room furniture"}

	tests := []struct {
		name     string
		repoErr  error
		wantCode int
		wantMsg  string
		wantErr  bool
	}{
		{name: "successful ban"},
		{
			name:     "already banned",
			repoErr:  fmt.Errorf("insert: %w", gRepo.ErrDuplicateKey),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Customer 'customer-1' is already banned",
			wantErr:  true,
		},
		{
			name:     "reason too short for the store",
			repoErr:  fmt.Errorf("insert: %w", gRepo.ErrConstraint),
			wantCode: http.StatusBadRequest,
			wantMsg:  service.MessageInvalidBanData,
			wantErr:  true,
		},
		{
			name:    "store error",
			repoErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)

			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, customer model.BannedCustomer) (model.BannedCustomer, error) {
					if tt.repoErr != nil {
						return model.BannedCustomer{}, tt.repoErr
					}

					return customer, nil
				},
			)

			res, err := svc.Create(context.Background(), req)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "customer-1", res.CustomerID)
				assert.Equal(t, "Damaged the room furniture", res.Reason)
				assert.NotEmpty(t, res.CreatedAt)

				return
			}

			require.Error(t, err)

			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestBannedCustomerService_GetAll(t *testing.T) {
	all := records(15)

	tests := []struct {
		name           string
		params         gDto.QueryParams
		page           []model.BannedCustomer
		total          int
		wantCount      int
		wantTotalPages int
	}{
		{
			name:           "first page",
			params:         gDto.QueryParams{Page: 1, Limit: 10},
			page:           all[:10],
			total:          15,
			wantCount:      10,
			wantTotalPages: 2,
		},
		{
			name:           "second page holds the rest",
			params:         gDto.QueryParams{Page: 2, Limit: 10},
			page:           all[10:],
			total:          15,
			wantCount:      5,
			wantTotalPages: 2,
		},
		{
			name:           "no records",
			params:         gDto.QueryParams{Page: 1, Limit: 10},
			page:           []model.BannedCustomer{},
			total:          0,
			wantCount:      0,
			wantTotalPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)

			wantParams := tt.params
			wantParams.SortBy = constant.FieldCreatedAt
			wantParams.SortDir = gDto.SortDirDesc

			mockRepo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(tt.total, nil)
			mockRepo.EXPECT().GetAll(gomock.Any(), wantParams, gDto.FilterGroup{}).Return(tt.page, nil)

			res, err := svc.GetAll(context.Background(), tt.params)
			require.NoError(t, err)

			assert.Len(t, res.Customers, tt.wantCount)
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, tt.wantTotalPages, res.TotalPages)
			assert.NotNil(t, res.Customers)
		})
	}

	t.Run("count error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
		assert.Error(t, err)
	})

	t.Run("list error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
		assert.Error(t, err)
	})
}

func TestBannedCustomerService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		record := records(1)[0]
		record.ID = banID
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(record, nil)

		res, err := svc.GetByID(context.Background(), banID)
		require.NoError(t, err)
		assert.Equal(t, banID, res.ID)
		assert.Equal(t, "customer-0", res.CustomerID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BannedCustomer{}, gRepo.ErrNotFound)

		_, err := svc.GetByID(context.Background(), banID)
		assertFailure(t, err, http.StatusNotFound, service.MessageBanNotFound)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetByID(context.Background(), "not-an-id")
		assertFailure(t, err, http.StatusNotFound, service.MessageBanNotFound)
	})
}

func TestBannedCustomerService_Delete(t *testing.T) {
	t.Run("delete then delete again", func(t *testing.T) {
		svc, mockRepo := newService(t)

		gomock.InOrder(
			mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil),
			mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil),
		)

		require.NoError(t, svc.Delete(context.Background(), banID))
		assertFailure(t, svc.Delete(context.Background(), banID), http.StatusNotFound, service.MessageBanNotFound)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		svc, _ := newService(t)

		assertFailure(t, svc.Delete(context.Background(), "x"), http.StatusNotFound, service.MessageBanNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

		err := svc.Delete(context.Background(), banID)
		require.Error(t, err)
		assert.False(t, failure.IsNotFound(err))
	})
}
