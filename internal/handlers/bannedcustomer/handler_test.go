package bannedcustomer_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wehouse/infras/otel/mocks"
	bannedMocks "wehouse/internal/domains/bannedcustomer/mocks"
	"wehouse/internal/domains/bannedcustomer/model/dto"
	"wehouse/internal/handlers/bannedcustomer"
	gDto "wehouse/shared/dto"
	"wehouse/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const banID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

type envelope struct {
	Status     string              `json:"status"`
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Errors     []failure.Violation `json:"errors"`
}

func setup(t *testing.T) (http.Handler, *bannedMocks.MockBannedCustomerService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := bannedMocks.NewMockBannedCustomerService(ctrl)

	handler := bannedcustomer.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, mockService
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	var env envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	}

	return recorder, env
}

func TestBanCustomer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mockService := setup(t)

		req := dto.CreateBannedCustomerRequest{CustomerID: "customer-1", Reason: "Damaged the room furniture"}
		mockService.EXPECT().Create(gomock.Any(), req).Return(dto.BannedCustomerResponse{
			ID:         banID,
			CustomerID: req.CustomerID,
			Reason:     req.Reason,
		}, nil)

		recorder, env := serve(t, router, http.MethodPost, "/api/banned-customers",
			`{"customerId":"customer-1","reason":"Damaged the room furniture"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "Customer banned successfully", env.Message)

		var created dto.BannedCustomerResponse
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, banID, created.ID)
	})

	t.Run("short reason", func(t *testing.T) {
		router, _ := setup(t)

		recorder, env := serve(t, router, http.MethodPost, "/api/banned-customers",
			`{"customerId":"customer-1","reason":"rude"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "reason", env.Errors[0].Field)
	})

	t.Run("store error is generic", func(t *testing.T) {
		router, mockService := setup(t)

		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BannedCustomerResponse{}, errors.New("pq: broken pipe"))

		recorder, env := serve(t, router, http.MethodPost, "/api/banned-customers",
			`{"customerId":"customer-1","reason":"Damaged the room furniture"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Failed to ban customer", env.Message)
	})
}

func TestGetBannedCustomers(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		router, mockService := setup(t)

		mockService.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).Return(dto.GetBannedCustomersResponse{
			Customers:  []dto.BannedCustomerResponse{},
			Total:      0,
			TotalPages: 0,
		}, nil)

		recorder, env := serve(t, router, http.MethodGet, "/api/banned-customers", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Banned customers retrieved successfully", env.Message)
		assert.JSONEq(t, `{"customers":[],"total":0,"totalPages":0}`, string(env.Data))
	})

	t.Run("second page", func(t *testing.T) {
		router, mockService := setup(t)

		mockService.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 10}).Return(dto.GetBannedCustomersResponse{
			Customers:  make([]dto.BannedCustomerResponse, 5),
			Total:      15,
			TotalPages: 2,
		}, nil)

		recorder, env := serve(t, router, http.MethodGet, "/api/banned-customers?page=2&limit=10", "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var page dto.GetBannedCustomersResponse
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Len(t, page.Customers, 5)
		assert.Equal(t, 15, page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("invalid page", func(t *testing.T) {
		router, _ := setup(t)

		recorder, env := serve(t, router, http.MethodGet, "/api/banned-customers?page=0", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "page", env.Errors[0].Field)
	})

	t.Run("store error", func(t *testing.T) {
		router, mockService := setup(t)

		mockService.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetBannedCustomersResponse{}, errors.New("timeout"))

		recorder, env := serve(t, router, http.MethodGet, "/api/banned-customers", "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, "Failed to fetch banned customers", env.Message)
	})
}

func TestGetBannedCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockService := setup(t)

		mockService.EXPECT().GetByID(gomock.Any(), banID).Return(dto.BannedCustomerResponse{ID: banID}, nil)

		recorder, _ := serve(t, router, http.MethodGet, "/api/banned-customers/"+banID, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := setup(t)

		recorder, env := serve(t, router, http.MethodGet, "/api/banned-customers/abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "id", env.Errors[0].Field)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := setup(t)

		mockService.EXPECT().GetByID(gomock.Any(), banID).Return(dto.BannedCustomerResponse{}, failure.NotFound("Ban record not found"))

		recorder, env := serve(t, router, http.MethodGet, "/api/banned-customers/"+banID, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Ban record not found", env.Message)
	})
}

func TestRemoveBan(t *testing.T) {
	router, mockService := setup(t)

	gomock.InOrder(
		mockService.EXPECT().Delete(gomock.Any(), banID).Return(nil),
		mockService.EXPECT().Delete(gomock.Any(), banID).Return(failure.NotFound("Ban record not found")),
		mockService.EXPECT().Delete(gomock.Any(), banID).Return(errors.New("timeout")),
	)

	recorder, _ := serve(t, router, http.MethodDelete, "/api/banned-customers/"+banID, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder, env := serve(t, router, http.MethodDelete, "/api/banned-customers/"+banID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Ban record not found", env.Message)

	recorder, env = serve(t, router, http.MethodDelete, "/api/banned-customers/"+banID, "")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Failed to remove ban record", env.Message)

	recorder, _ = serve(t, router, http.MethodDelete, "/api/banned-customers/nope", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
