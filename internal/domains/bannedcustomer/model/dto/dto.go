package dto

import (
	"strconv"

	"wehouse/internal/domains/bannedcustomer/model"
	"wehouse/shared"
	gDto "wehouse/shared/dto"
	gModel "wehouse/shared/model"
	"wehouse/shared/timezone"
	"wehouse/shared/validator"

	"github.com/google/uuid"
)

type CreateBannedCustomerRequest struct {
	CustomerID string `json:"customerId"`
	Reason     string `json:"reason"`
}

var CreateBannedCustomerRules = []validator.Rule[CreateBannedCustomerRequest]{
	{
		Field:           "customerId",
		Value:           validator.Text(func(r *CreateBannedCustomerRequest) string { return r.CustomerID }),
		Required:        true,
		RequiredMessage: "Customer ID is required",
		Checks: []validator.Check{
			{Predicate: validator.NotBlank, Message: "Customer ID is required"},
		},
	},
	{
		Field:           "reason",
		Value:           validator.Text(func(r *CreateBannedCustomerRequest) string { return r.Reason }),
		Required:        true,
		RequiredMessage: "Reason is required",
		Checks: []validator.Check{
			{Tag: "min=" + strconv.Itoa(model.ReasonMinLength), Message: "Reason must be at least 10 characters long"},
		},
	},
}

func (c *CreateBannedCustomerRequest) ToModel() model.BannedCustomer {
	now := timezone.Now()

	return model.BannedCustomer{
		ID:         uuid.NewString(),
		CustomerID: c.CustomerID,
		Reason:     c.Reason,
		Metadata:   gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

type BannedCustomerResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Reason     string `json:"reason"`
	gDto.Metadata
}

func (r *BannedCustomerResponse) FromModel(model model.BannedCustomer) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetBannedCustomersResponse struct {
	Customers  []BannedCustomerResponse `json:"customers"`
	Total      int                      `json:"total"`
	TotalPages int                      `json:"totalPages"`
}

func (r *GetBannedCustomersResponse) FromModels(models []model.BannedCustomer, total, limit int) {
	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, limit)

	r.Customers = make([]BannedCustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
