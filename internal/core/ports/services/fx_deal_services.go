package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
)

// FxDealReaderSvc defines read operations for FX deals
type FxDealReaderSvc interface {
	// GetFxDealByUniqueID retrieves a deal by its business ID.
	GetFxDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.FxDeal, error)

	// GetFxDealByID retrieves a deal by its surrogate ID.
	GetFxDealByID(ctx context.Context, id int64) (*domain.FxDeal, error)

	// ListFxDeals retrieves every deal, newest first.
	ListFxDeals(ctx context.Context) ([]domain.FxDeal, error)

	// ListFxDealsPage retrieves one page of deals. An empty nextToken in the result means there are no more pages.
	ListFxDealsPage(ctx context.Context, nextToken string, pageSize int) ([]domain.FxDeal, string, error)

	ListFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error)
	CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error)
	ListFxDealsByFromCurrency(ctx context.Context, fromCurrency string) ([]domain.FxDeal, error)
	ListFxDealsByToCurrency(ctx context.Context, toCurrency string) ([]domain.FxDeal, error)

	// ListFxDealsByDateRange retrieves deals whose timestamp lies in [start, end]. Zero times count as missing.
	ListFxDealsByDateRange(ctx context.Context, start, end time.Time) ([]domain.FxDeal, error)

	// ListRecentFxDeals retrieves the most recently recorded deals; limit must be within [1, 1000].
	ListRecentFxDeals(ctx context.Context, limit int) ([]domain.FxDeal, error)

	CountFxDeals(ctx context.Context) (int64, error)
	ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error)
}

// FxDealWriterSvc defines write operations for FX deals
type FxDealWriterSvc interface {
	// CreateFxDeal validates, de-duplicates, normalizes and stores a new deal.
	CreateFxDeal(ctx context.Context, req dto.CreateFxDealRequest) (*domain.FxDeal, error)
}

// FxDealSvcFacade combines all FX deal service interfaces
type FxDealSvcFacade interface {
	FxDealReaderSvc
	FxDealWriterSvc
}

// RequestValidatorSvc checks an inbound deal request against every field rule.
type RequestValidatorSvc interface {
	// Validate returns nil or an *apperrors.ValidationError listing every violated rule.
	Validate(req dto.CreateFxDealRequest) error
}
