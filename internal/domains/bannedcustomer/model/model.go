package model

import "wehouse/shared/model"

const (
	TableName  = "banned_customers"
	EntityName = "banned_customer"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldReason     = "reason"
)

const ReasonMinLength = 10

type BannedCustomer struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	Reason     string `db:"reason"`
	model.Metadata
}
