package dto

import (
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFxDealRequest is the body of POST /fx-deals.
// Pointer fields distinguish an absent value from a zero value.
type CreateFxDealRequest struct {
	DealUniqueID  string           `json:"dealUniqueId" validate:"notblank,max=255" example:"D-1"`
	FromCurrency  string           `json:"fromCurrency" validate:"notblank,fxcurrency" example:"USD"`
	ToCurrency    string           `json:"toCurrency" validate:"notblank,fxcurrency" example:"EUR"`
	DealTimestamp *DateTime        `json:"dealTimestamp" validate:"required" swaggertype:"string" example:"2026-01-02T15:04:05Z"`
	DealAmount    *decimal.Decimal `json:"dealAmount" validate:"required" swaggertype:"number" example:"100.5"`
}

// FxDealResponse is the wire shape of a stored deal.
type FxDealResponse struct {
	ID            int64           `json:"id"`
	DealUniqueID  string          `json:"dealUniqueId"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	DealTimestamp time.Time       `json:"dealTimestamp"`
	DealAmount    decimal.Decimal `json:"dealAmount" swaggertype:"number"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToFxDealResponse converts a domain.FxDeal to FxDealResponse DTO
func ToFxDealResponse(deal *domain.FxDeal) FxDealResponse {
	return FxDealResponse{
		ID:            deal.ID,
		DealUniqueID:  deal.DealUniqueID,
		FromCurrency:  deal.FromCurrency,
		ToCurrency:    deal.ToCurrency,
		DealTimestamp: deal.DealTimestamp,
		DealAmount:    deal.DealAmount,
		CreatedAt:     deal.CreatedAt,
		UpdatedAt:     deal.UpdatedAt,
	}
}

// ToListFxDealResponse converts a slice of domain.FxDeal to a slice of FxDealResponse DTOs
func ToListFxDealResponse(deals []domain.FxDeal) []FxDealResponse {
	res := make([]FxDealResponse, len(deals))
	for i := range deals {
		res[i] = ToFxDealResponse(&deals[i])
	}
	return res
}
