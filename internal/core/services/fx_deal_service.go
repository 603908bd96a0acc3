package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/ports/messaging"
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/currency"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/pagination"
)

const (
	MinRecentLimit  = 1
	MaxRecentLimit  = 1000
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

const invalidCurrencyMessage = "Invalid currency code provided"

// fxDealService implements the FxDealSvcFacade interface
type fxDealService struct {
	BaseService
	dealRepo  portsrepo.FxDealRepositoryFacade
	validator portssvc.RequestValidatorSvc
	publisher messaging.DealEventPublisher
}

// FxDealServiceOption is a functional option for configuring the FX deal service
type FxDealServiceOption func(*fxDealService)

// WithTransactionManager runs every operation inside a storage transaction.
func WithTransactionManager(txManager portsrepo.TransactionManager) FxDealServiceOption {
	return func(s *fxDealService) {
		s.TxManager = txManager
	}
}

// WithDealEventPublisher announces recorded deals through publisher.
func WithDealEventPublisher(publisher messaging.DealEventPublisher) FxDealServiceOption {
	return func(s *fxDealService) {
		s.publisher = publisher
	}
}

// NewFxDealService creates a new FX deal service with the provided options
func NewFxDealService(repo portsrepo.FxDealRepositoryFacade, validator portssvc.RequestValidatorSvc, options ...FxDealServiceOption) portssvc.FxDealSvcFacade {
	svc := &fxDealService{
		dealRepo:  repo,
		validator: validator,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FxDealSvcFacade = (*fxDealService)(nil)

func duplicateDealError(dealUniqueID string) error {
	return apperrors.NewDuplicateError(fmt.Sprintf("Deal with unique ID '%s' already exists", dealUniqueID))
}

// CreateFxDeal validates, de-duplicates, normalizes and stores a new deal.
// The existence check is a fast path; the unique constraint reported by the repository is authoritative.
func (s *fxDealService) CreateFxDeal(ctx context.Context, req dto.CreateFxDealRequest) (*domain.FxDeal, error) {
	s.LogInfo(ctx, "Creating FX deal", slog.String("deal_unique_id", req.DealUniqueID))

	if err := s.validator.Validate(req); err != nil {
		s.GetLogger(ctx).Warn("FX deal request failed validation",
			slog.String("deal_unique_id", req.DealUniqueID),
			slog.String("error", err.Error()))
		return nil, err
	}

	fromCurrency, _ := currency.NormalizeCurrency(req.FromCurrency)
	toCurrency, _ := currency.NormalizeCurrency(req.ToCurrency)
	deal := domain.FxDeal{
		DealUniqueID:  req.DealUniqueID,
		FromCurrency:  fromCurrency,
		ToCurrency:    toCurrency,
		DealTimestamp: req.DealTimestamp.Time.UTC(),
		DealAmount:    *req.DealAmount,
	}

	var created *domain.FxDeal
	err := s.withinTx(ctx, false, func(txCtx context.Context) error {
		exists, err := s.dealRepo.ExistsByDealUniqueID(txCtx, deal.DealUniqueID)
		if err != nil {
			return fmt.Errorf("failed to check FX deal existence: %w", err)
		}
		if exists {
			return duplicateDealError(deal.DealUniqueID)
		}

		created, err = s.dealRepo.CreateFxDeal(txCtx, deal)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return duplicateDealError(deal.DealUniqueID)
			}
			return apperrors.NewAppError(500, "Failed to save FX deal", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.GetLogger(ctx).Warn("Duplicate FX deal rejected", slog.String("deal_unique_id", deal.DealUniqueID))
		} else {
			s.LogError(ctx, err, "Failed to create FX deal", slog.String("deal_unique_id", deal.DealUniqueID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "FX deal created", slog.Int64("id", created.ID), slog.String("deal_unique_id", created.DealUniqueID))
	s.publishDealRecorded(ctx, *created)
	return created, nil
}

// publishDealRecorded never fails the caller: the deal is already committed.
func (s *fxDealService) publishDealRecorded(ctx context.Context, deal domain.FxDeal) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishDealRecorded(ctx, domain.NewDealRecordedEvent(deal)); err != nil {
		s.LogError(ctx, err, "Failed to publish deal recorded event", slog.String("deal_unique_id", deal.DealUniqueID))
	}
}

func (s *fxDealService) GetFxDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.FxDeal, error) {
	if strings.TrimSpace(dealUniqueID) == "" {
		return nil, apperrors.NewValidationError("Deal unique ID is required")
	}

	deal, err := readInTx(ctx, &s.BaseService, func(txCtx context.Context) (*domain.FxDeal, error) {
		return s.dealRepo.FindFxDealByUniqueID(txCtx, dealUniqueID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Deal with unique ID '%s' not found", dealUniqueID))
		}
		s.LogError(ctx, err, "Failed to find FX deal", slog.String("deal_unique_id", dealUniqueID))
		return nil, fmt.Errorf("failed to get FX deal %s: %w", dealUniqueID, err)
	}
	return deal, nil
}

func (s *fxDealService) GetFxDealByID(ctx context.Context, id int64) (*domain.FxDeal, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Deal ID must be a positive number")
	}

	deal, err := readInTx(ctx, &s.BaseService, func(txCtx context.Context) (*domain.FxDeal, error) {
		return s.dealRepo.FindFxDealByID(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Deal with ID '%d' not found", id))
		}
		s.LogError(ctx, err, "Failed to find FX deal", slog.Int64("id", id))
		return nil, fmt.Errorf("failed to get FX deal %d: %w", id, err)
	}
	return deal, nil
}

// listDeals runs a read-only list query and guarantees a non-nil slice.
func (s *fxDealService) listDeals(ctx context.Context, op string, fn func(ctx context.Context) ([]domain.FxDeal, error), keyvals ...any) ([]domain.FxDeal, error) {
	deals, err := readInTx(ctx, &s.BaseService, fn)
	if err != nil {
		s.LogError(ctx, err, "Failed to "+op, keyvals...)
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	if deals == nil {
		deals = []domain.FxDeal{}
	}
	s.LogDebug(ctx, "FX deals listed", append([]any{slog.String("op", op), slog.Int("count", len(deals))}, keyvals...)...)
	return deals, nil
}

func (s *fxDealService) ListFxDeals(ctx context.Context) ([]domain.FxDeal, error) {
	return s.listDeals(ctx, "list FX deals", s.dealRepo.ListFxDeals)
}

// ListFxDealsPage pages through the same order as ListFxDeals using an opaque continuation token.
func (s *fxDealService) ListFxDealsPage(ctx context.Context, nextToken string, pageSize int) ([]domain.FxDeal, string, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, "", apperrors.NewValidationError(fmt.Sprintf("Page size must be between 1 and %d", MaxPageSize))
	}

	var cursor *domain.FxDealCursor
	if nextToken != "" {
		ts, id, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", apperrors.NewValidationError("Invalid pagination token")
		}
		cursor = &domain.FxDealCursor{DealTimestamp: ts, ID: id}
	}

	// One extra row tells whether another page exists.
	deals, err := s.listDeals(ctx, "list FX deals page", func(txCtx context.Context) ([]domain.FxDeal, error) {
		return s.dealRepo.ListFxDealsPage(txCtx, cursor, pageSize+1)
	}, slog.Int("page_size", pageSize))
	if err != nil {
		return nil, "", err
	}

	token := ""
	if len(deals) > pageSize {
		deals = deals[:pageSize]
		last := deals[len(deals)-1].CursorAfter()
		token = pagination.EncodeToken(last.DealTimestamp, last.ID)
	}
	return deals, token, nil
}

// normalizePair checks both codes and returns their canonical forms.
func normalizePair(fromCurrency, toCurrency string) (string, string, error) {
	from, okFrom := currency.NormalizeCurrency(fromCurrency)
	to, okTo := currency.NormalizeCurrency(toCurrency)
	if !okFrom || !okTo {
		return "", "", apperrors.NewValidationError(invalidCurrencyMessage)
	}
	return from, to, nil
}

func (s *fxDealService) ListFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error) {
	from, to, err := normalizePair(fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	return s.listDeals(ctx, "list FX deals by currency pair", func(txCtx context.Context) ([]domain.FxDeal, error) {
		return s.dealRepo.ListFxDealsByCurrencyPair(txCtx, from, to)
	}, slog.String("currency_pair", from+"/"+to))
}

func (s *fxDealService) CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error) {
	from, to, err := normalizePair(fromCurrency, toCurrency)
	if err != nil {
		return 0, err
	}
	count, err := readInTx(ctx, &s.BaseService, func(txCtx context.Context) (int64, error) {
		return s.dealRepo.CountFxDealsByCurrencyPair(txCtx, from, to)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to count FX deals by currency pair", slog.String("currency_pair", from+"/"+to))
		return 0, fmt.Errorf("failed to count FX deals for %s/%s: %w", from, to, err)
	}
	return count, nil
}

func (s *fxDealService) ListFxDealsByFromCurrency(ctx context.Context, fromCurrency string) ([]domain.FxDeal, error) {
	from, ok := currency.NormalizeCurrency(fromCurrency)
	if !ok {
		return nil, apperrors.NewValidationError(invalidCurrencyMessage)
	}
	return s.listDeals(ctx, "list FX deals by from currency", func(txCtx context.Context) ([]domain.FxDeal, error) {
		return s.dealRepo.ListFxDealsByFromCurrency(txCtx, from)
	}, slog.String("from_currency", from))
}

func (s *fxDealService) ListFxDealsByToCurrency(ctx context.Context, toCurrency string) ([]domain.FxDeal, error) {
	to, ok := currency.NormalizeCurrency(toCurrency)
	if !ok {
		return nil, apperrors.NewValidationError(invalidCurrencyMessage)
	}
	return s.listDeals(ctx, "list FX deals by to currency", func(txCtx context.Context) ([]domain.FxDeal, error) {
		return s.dealRepo.ListFxDealsByToCurrency(txCtx, to)
	}, slog.String("to_currency", to))
}

func (s *fxDealService) ListFxDealsByDateRange(ctx context.Context, start, end time.Time) ([]domain.FxDeal, error) {
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.NewValidationError("Start date and end date are required")
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("Start date cannot be after end date")
	}
	return s.listDeals(ctx, "list FX deals by date range", func(txCtx context.Context) ([]domain.FxDeal, error) {
		return s.dealRepo.ListFxDealsByTimestampRange(txCtx, start, end)
	}, slog.Time("start", start), slog.Time("end", end))
}

func (s *fxDealService) ListRecentFxDeals(ctx context.Context, limit int) ([]domain.FxDeal, error) {
	if limit < MinRecentLimit || limit > MaxRecentLimit {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Limit must be between %d and %d", MinRecentLimit, MaxRecentLimit))
	}
	return s.listDeals(ctx, "list recent FX deals", func(txCtx context.Context) ([]domain.FxDeal, error) {
		return s.dealRepo.ListRecentFxDeals(txCtx, limit)
	}, slog.Int("limit", limit))
}

func (s *fxDealService) CountFxDeals(ctx context.Context) (int64, error) {
	count, err := readInTx(ctx, &s.BaseService, s.dealRepo.CountFxDeals)
	if err != nil {
		s.LogError(ctx, err, "Failed to count FX deals")
		return 0, fmt.Errorf("failed to count FX deals: %w", err)
	}
	return count, nil
}

func (s *fxDealService) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	if strings.TrimSpace(dealUniqueID) == "" {
		return false, apperrors.NewValidationError("Deal unique ID is required")
	}
	exists, err := readInTx(ctx, &s.BaseService, func(txCtx context.Context) (bool, error) {
		return s.dealRepo.ExistsByDealUniqueID(txCtx, dealUniqueID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to check FX deal existence", slog.String("deal_unique_id", dealUniqueID))
		return false, fmt.Errorf("failed to check FX deal %s: %w", dealUniqueID, err)
	}
	return exists, nil
}
