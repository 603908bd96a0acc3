package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	"github.com/SscSPs/fx_deals_warehouse/internal/models"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const fxDealColumns = `id, deal_unique_id, from_currency, to_currency, deal_timestamp, deal_amount, created_at, updated_at`

type PgxFxDealRepository struct {
	BaseRepository
}

// newPgxFxDealRepository creates a new repository for FX deal data.
func newPgxFxDealRepository(pool PgxPool) portsrepo.FxDealRepositoryWithTx {
	return &PgxFxDealRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FxDealRepositoryWithTx = (*PgxFxDealRepository)(nil)

func scanFxDeal(row pgx.Row) (models.FxDeal, error) {
	var deal models.FxDeal
	err := row.Scan(
		&deal.ID,
		&deal.DealUniqueID,
		&deal.FromCurrency,
		&deal.ToCurrency,
		&deal.DealTimestamp,
		&deal.DealAmount,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	return deal, err
}

// CreateFxDeal inserts a deal. created_at and updated_at come from the column defaults.
func (r *PgxFxDealRepository) CreateFxDeal(ctx context.Context, deal domain.FxDeal) (*domain.FxDeal, error) {
	modelDeal := mapping.ToModelFxDeal(deal)

	query := `
		INSERT INTO fx_deals (deal_unique_id, from_currency, to_currency, deal_timestamp, deal_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + fxDealColumns + `;
	`
	stored, err := scanFxDeal(r.conn(ctx).QueryRow(ctx, query,
		modelDeal.DealUniqueID,
		modelDeal.FromCurrency,
		modelDeal.ToCurrency,
		modelDeal.DealTimestamp,
		modelDeal.DealAmount,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: deal unique id %s", apperrors.ErrDuplicate, modelDeal.DealUniqueID)
		}
		return nil, fmt.Errorf("failed to insert fx deal %s: %w", modelDeal.DealUniqueID, err)
	}

	domainDeal := mapping.ToDomainFxDeal(stored)
	return &domainDeal, nil
}

func (r *PgxFxDealRepository) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM fx_deals WHERE deal_unique_id = $1);`
	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, query, dealUniqueID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check fx deal %s: %w", dealUniqueID, err)
	}
	return exists, nil
}

// findOne runs a single-row query and maps pgx.ErrNoRows to apperrors.ErrNotFound.
func (r *PgxFxDealRepository) findOne(ctx context.Context, query string, arg any) (*domain.FxDeal, error) {
	stored, err := scanFxDeal(r.conn(ctx).QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fx deal %v: %w", arg, err)
	}
	domainDeal := mapping.ToDomainFxDeal(stored)
	return &domainDeal, nil
}

func (r *PgxFxDealRepository) FindFxDealByID(ctx context.Context, id int64) (*domain.FxDeal, error) {
	return r.findOne(ctx, `SELECT `+fxDealColumns+` FROM fx_deals WHERE id = $1;`, id)
}

func (r *PgxFxDealRepository) FindFxDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.FxDeal, error) {
	return r.findOne(ctx, `SELECT `+fxDealColumns+` FROM fx_deals WHERE deal_unique_id = $1;`, dealUniqueID)
}

// list runs a multi-row query. An empty result is an empty, non-nil slice.
func (r *PgxFxDealRepository) list(ctx context.Context, query string, args ...any) ([]domain.FxDeal, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fx deals: %w", err)
	}
	defer rows.Close()

	modelDeals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FxDeal, error) {
		return scanFxDeal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan fx deals: %w", err)
	}

	return mapping.ToDomainFxDealSlice(modelDeals), nil
}

// ListFxDeals orders by deal_timestamp then id so that ties are stable across pages.
func (r *PgxFxDealRepository) ListFxDeals(ctx context.Context) ([]domain.FxDeal, error) {
	return r.list(ctx, `SELECT `+fxDealColumns+` FROM fx_deals ORDER BY deal_timestamp DESC, id DESC;`)
}

func (r *PgxFxDealRepository) ListFxDealsPage(ctx context.Context, cursor *domain.FxDealCursor, pageSize int) ([]domain.FxDeal, error) {
	if cursor == nil {
		return r.list(ctx, `
			SELECT `+fxDealColumns+`
			FROM fx_deals
			ORDER BY deal_timestamp DESC, id DESC
			LIMIT $1;
		`, pageSize)
	}
	return r.list(ctx, `
		SELECT `+fxDealColumns+`
		FROM fx_deals
		WHERE (deal_timestamp, id) < ($1, $2)
		ORDER BY deal_timestamp DESC, id DESC
		LIMIT $3;
	`, cursor.DealTimestamp, cursor.ID, pageSize)
}

func (r *PgxFxDealRepository) ListFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.FxDeal, error) {
	return r.list(ctx, `
		SELECT `+fxDealColumns+`
		FROM fx_deals
		WHERE from_currency = $1 AND to_currency = $2
		ORDER BY deal_timestamp DESC, id DESC;
	`, fromCurrency, toCurrency)
}

func (r *PgxFxDealRepository) ListFxDealsByFromCurrency(ctx context.Context, fromCurrency string) ([]domain.FxDeal, error) {
	return r.list(ctx, `SELECT `+fxDealColumns+` FROM fx_deals WHERE from_currency = $1 ORDER BY deal_timestamp DESC, id DESC;`, fromCurrency)
}

func (r *PgxFxDealRepository) ListFxDealsByToCurrency(ctx context.Context, toCurrency string) ([]domain.FxDeal, error) {
	return r.list(ctx, `SELECT `+fxDealColumns+` FROM fx_deals WHERE to_currency = $1 ORDER BY deal_timestamp DESC, id DESC;`, toCurrency)
}

// ListFxDealsByTimestampRange includes both bounds.
func (r *PgxFxDealRepository) ListFxDealsByTimestampRange(ctx context.Context, start, end time.Time) ([]domain.FxDeal, error) {
	return r.list(ctx, `
		SELECT `+fxDealColumns+`
		FROM fx_deals
		WHERE deal_timestamp BETWEEN $1 AND $2
		ORDER BY deal_timestamp DESC, id DESC;
	`, start, end)
}

func (r *PgxFxDealRepository) ListRecentFxDeals(ctx context.Context, limit int) ([]domain.FxDeal, error) {
	return r.list(ctx, `SELECT `+fxDealColumns+` FROM fx_deals ORDER BY created_at DESC, id DESC LIMIT $1;`, limit)
}

func (r *PgxFxDealRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count fx deals: %w", err)
	}
	return count, nil
}

func (r *PgxFxDealRepository) CountFxDeals(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM fx_deals;`)
}

func (r *PgxFxDealRepository) CountFxDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM fx_deals WHERE from_currency = $1 AND to_currency = $2;`, fromCurrency, toCurrency)
}
