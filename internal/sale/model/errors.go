package model

import "github.com/festy23/sales_dashboard/internal/apperr"

var (
	// ErrAmountRequired indicates that the sale amount is missing.
	ErrAmountRequired = apperr.Validation("amount is required")
	// ErrNegativeAmount indicates that the sale amount is below zero.
	ErrNegativeAmount = apperr.Validation("amount must not be negative")
	// ErrAmountScale indicates that the amount has more than two decimal places.
	ErrAmountScale = apperr.Validation("amount must have at most 2 decimal places")
	// ErrSellerRequired indicates that seller_id is missing.
	ErrSellerRequired = apperr.Validation("seller_id is required")
	// ErrTeamRequired indicates that team_id is missing.
	ErrTeamRequired = apperr.Validation("team_id is required")
	// ErrInvalidBody indicates that the request body is not valid JSON.
	ErrInvalidBody = apperr.Validation("invalid request body")
)
