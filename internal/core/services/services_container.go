package services

import (
	"github.com/SscSPs/fx_deals_warehouse/internal/core/ports/messaging"
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher messaging.DealEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Validator = NewValidationService()

	options := []FxDealServiceOption{WithTransactionManager(repos.TxManager)}
	if publisher != nil {
		options = append(options, WithDealEventPublisher(publisher))
	}
	container.FxDeal = NewFxDealService(repos.FxDealRepo, container.Validator, options...)

	return container
}
