package pgsql

import (
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on the same pool so they can share transactions.
func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	fxDealRepo := newPgxFxDealRepository(dbPool)

	return portsrepo.RepositoryProvider{
		FxDealRepo: fxDealRepo,
		TxManager:  NewTransactionManager(dbPool),
	}
}
