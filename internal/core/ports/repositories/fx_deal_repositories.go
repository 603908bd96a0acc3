package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
)

// FxDealReader defines read operations for FX deal data
type FxDealReader interface {
	// ExistsByDealUniqueID reports whether a deal with the given business ID is stored.
	ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error)

	// FindFxDealByID retrieves a deal by its surrogate ID.
	FindFxDealByID(ctx context.Context, id int64) (*domain.FxDeal, error)

	// FindFxDealByUniqueID retrieves a deal by its business ID.
	FindFxDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.FxDeal, error)

	// ListFxDeals retrieves every deal, newest deal timestamp first.
	ListFxDeals(ctx context.Context) ([]domain.FxDeal, error)

	// ListFxDealsPage retrieves up to pageSize deals strictly after the cursor, in the order of ListFxDeals.
	// A nil cursor starts from the beginning.
	ListFxDealsPage(ctx context.Context, cursor *domain.FxDealCursor, pageSize int) ([]domain.FxDeal, error)

	ListFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error)
	ListFxDealsByFromCurrency(ctx context.Context, fromCurrency string) ([]domain.FxDeal, error)
	ListFxDealsByToCurrency(ctx context.Context, toCurrency string) ([]domain.FxDeal, error)

	// ListFxDealsByTimestampRange retrieves deals whose deal timestamp lies in [start, end].
	ListFxDealsByTimestampRange(ctx context.Context, start, end time.Time) ([]domain.FxDeal, error)

	// ListRecentFxDeals retrieves the most recently created deals.
	ListRecentFxDeals(ctx context.Context, limit int) ([]domain.FxDeal, error)

	CountFxDeals(ctx context.Context) (int64, error)
	CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error)
}

// FxDealWriter defines write operations for FX deal data
type FxDealWriter interface {
	// CreateFxDeal inserts a deal and returns it with the storage-assigned fields populated.
	// Returns apperrors.ErrDuplicate when the business ID is already stored.
	CreateFxDeal(ctx context.Context, deal domain.FxDeal) (*domain.FxDeal, error)
}

// FxDealRepositoryFacade combines all FX deal repository interfaces
type FxDealRepositoryFacade interface {
	FxDealReader
	FxDealWriter
}

// FxDealRepositoryWithTx extends FxDealRepositoryFacade with transaction capabilities
type FxDealRepositoryWithTx interface {
	FxDealRepositoryFacade
	TransactionManager
}
