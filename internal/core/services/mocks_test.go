package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock FxDealRepository ---
type MockFxDealRepository struct {
	mock.Mock
}

func (m *MockFxDealRepository) CreateFxDeal(ctx context.Context, deal domain.FxDeal) (*domain.FxDeal, error) {
	args := m.Called(ctx, deal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxDeal), args.Error(1)
}

func (m *MockFxDealRepository) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	args := m.Called(ctx, dealUniqueID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFxDealRepository) FindFxDealByID(ctx context.Context, id int64) (*domain.FxDeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxDeal), args.Error(1)
}

func (m *MockFxDealRepository) FindFxDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.FxDeal, error) {
	args := m.Called(ctx, dealUniqueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxDeal), args.Error(1)
}

func (m *MockFxDealRepository) deals(args mock.Arguments) ([]domain.FxDeal, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FxDeal), args.Error(1)
}

func (m *MockFxDealRepository) ListFxDeals(ctx context.Context) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx))
}

func (m *MockFxDealRepository) ListFxDealsPage(ctx context.Context, cursor *domain.FxDealCursor, pageSize int) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx, cursor, pageSize))
}

func (m *MockFxDealRepository) ListFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx, fromCurrency, toCurrency))
}

func (m *MockFxDealRepository) ListFxDealsByFromCurrency(ctx context.Context, fromCurrency string) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx, fromCurrency))
}

func (m *MockFxDealRepository) ListFxDealsByToCurrency(ctx context.Context, toCurrency string) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx, toCurrency))
}

func (m *MockFxDealRepository) ListFxDealsByTimestampRange(ctx context.Context, start, end time.Time) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx, start, end))
}

func (m *MockFxDealRepository) ListRecentFxDeals(ctx context.Context, limit int) ([]domain.FxDeal, error) {
	return m.deals(m.Called(ctx, limit))
}

func (m *MockFxDealRepository) CountFxDeals(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFxDealRepository) CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransactionManager ---

// MockTxManager records the access mode and runs fn inline with the caller's context.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithinTx(ctx context.Context, readOnly bool, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, readOnly)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- Mock DealEventPublisher ---
type MockDealEventPublisher struct {
	mock.Mock
}

func (m *MockDealEventPublisher) PublishDealRecorded(ctx context.Context, event domain.DealRecordedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockDealEventPublisher) Close() error {
	return m.Called().Error(0)
}
