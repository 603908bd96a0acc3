package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock FxDealService ---
type MockFxDealService struct {
	mock.Mock
}

func (m *MockFxDealService) CreateFxDeal(ctx context.Context, req dto.CreateFxDealRequest) (*domain.FxDeal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) GetFxDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.FxDeal, error) {
	args := m.Called(ctx, dealUniqueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) GetFxDealByID(ctx context.Context, id int64) (*domain.FxDeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) ListFxDeals(ctx context.Context) ([]domain.FxDeal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) ListFxDealsPage(ctx context.Context, nextToken string, pageSize int) ([]domain.FxDeal, string, error) {
	args := m.Called(ctx, nextToken, pageSize)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.FxDeal), args.String(1), args.Error(2)
}

func (m *MockFxDealService) ListFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFxDealService) ListFxDealsByFromCurrency(ctx context.Context, fromCurrency string) ([]domain.FxDeal, error) {
	args := m.Called(ctx, fromCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) ListFxDealsByToCurrency(ctx context.Context, toCurrency string) ([]domain.FxDeal, error) {
	args := m.Called(ctx, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) ListFxDealsByDateRange(ctx context.Context, start, end time.Time) ([]domain.FxDeal, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) ListRecentFxDeals(ctx context.Context, limit int) ([]domain.FxDeal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealService) CountFxDeals(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFxDealService) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	args := m.Called(ctx, dealUniqueID)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FxDealSvcFacade = (*MockFxDealService)(nil)

// memoryFxDealRepository keeps deals in memory for end-to-end handler tests.
type memoryFxDealRepository struct {
	mu     sync.Mutex
	nextID int64
	deals  []domain.FxDeal
}

var _ portsrepo.FxDealRepositoryFacade = (*memoryFxDealRepository)(nil)

func (r *memoryFxDealRepository) filter(keep func(domain.FxDeal) bool) []domain.FxDeal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.FxDeal, 0, len(r.deals))
	for _, d := range r.deals {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DealTimestamp.Equal(out[j].DealTimestamp) {
			return out[i].DealTimestamp.After(out[j].DealTimestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *memoryFxDealRepository) ExistsByDealUniqueID(_ context.Context, dealUniqueID string) (bool, error) {
	return len(r.filter(func(d domain.FxDeal) bool { return d.DealUniqueID == dealUniqueID })) > 0, nil
}

func (r *memoryFxDealRepository) FindFxDealByID(_ context.Context, id int64) (*domain.FxDeal, error) {
	found := r.filter(func(d domain.FxDeal) bool { return d.ID == id })
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &found[0], nil
}

func (r *memoryFxDealRepository) FindFxDealByUniqueID(_ context.Context, dealUniqueID string) (*domain.FxDeal, error) {
	found := r.filter(func(d domain.FxDeal) bool { return d.DealUniqueID == dealUniqueID })
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &found[0], nil
}

func (r *memoryFxDealRepository) ListFxDeals(_ context.Context) ([]domain.FxDeal, error) {
	return r.filter(func(domain.FxDeal) bool { return true }), nil
}

func (r *memoryFxDealRepository) ListFxDealsPage(_ context.Context, cursor *domain.FxDealCursor, pageSize int) ([]domain.FxDeal, error) {
	deals := r.filter(func(d domain.FxDeal) bool {
		if cursor == nil {
			return true
		}
		if d.DealTimestamp.Equal(cursor.DealTimestamp) {
			return d.ID < cursor.ID
		}
		return d.DealTimestamp.Before(cursor.DealTimestamp)
	})
	if len(deals) > pageSize {
		deals = deals[:pageSize]
	}
	return deals, nil
}

func (r *memoryFxDealRepository) ListFxDealsByCurrencyPair(_ context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error) {
	return r.filter(func(d domain.FxDeal) bool { return d.FromCurrency == fromCurrency && d.ToCurrency == toCurrency }), nil
}

func (r *memoryFxDealRepository) ListFxDealsByFromCurrency(_ context.Context, fromCurrency string) ([]domain.FxDeal, error) {
	return r.filter(func(d domain.FxDeal) bool { return d.FromCurrency == fromCurrency }), nil
}

func (r *memoryFxDealRepository) ListFxDealsByToCurrency(_ context.Context, toCurrency string) ([]domain.FxDeal, error) {
	return r.filter(func(d domain.FxDeal) bool { return d.ToCurrency == toCurrency }), nil
}

func (r *memoryFxDealRepository) ListFxDealsByTimestampRange(_ context.Context, start, end time.Time) ([]domain.FxDeal, error) {
	return r.filter(func(d domain.FxDeal) bool {
		return !d.DealTimestamp.Before(start) && !d.DealTimestamp.After(end)
	}), nil
}

func (r *memoryFxDealRepository) ListRecentFxDeals(_ context.Context, limit int) ([]domain.FxDeal, error) {
	deals := r.filter(func(domain.FxDeal) bool { return true })
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].ID > deals[j].ID })
	if len(deals) > limit {
		deals = deals[:limit]
	}
	return deals, nil
}

func (r *memoryFxDealRepository) CountFxDeals(_ context.Context) (int64, error) {
	return int64(len(r.filter(func(domain.FxDeal) bool { return true }))), nil
}

func (r *memoryFxDealRepository) CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error) {
	deals, _ := r.ListFxDealsByCurrencyPair(ctx, fromCurrency, toCurrency)
	return int64(len(deals)), nil
}

func (r *memoryFxDealRepository) CreateFxDeal(_ context.Context, deal domain.FxDeal) (*domain.FxDeal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.deals {
		if d.DealUniqueID == deal.DealUniqueID {
			return nil, apperrors.ErrDuplicate
		}
	}
	r.nextID++
	now := time.Now().UTC()
	deal.ID = r.nextID
	deal.CreatedAt = now
	deal.UpdatedAt = now
	r.deals = append(r.deals, deal)
	return &deal, nil
}
