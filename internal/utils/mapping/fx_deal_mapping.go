package mapping

import (
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/SscSPs/fx_deals_warehouse/internal/models"
)

// ToModelFxDeal converts a domain FxDeal to a model FxDeal
func ToModelFxDeal(d domain.FxDeal) models.FxDeal {
	return models.FxDeal{
		ID:            d.ID,
		DealUniqueID:  d.DealUniqueID,
		FromCurrency:  d.FromCurrency,
		ToCurrency:    d.ToCurrency,
		DealTimestamp: d.DealTimestamp,
		DealAmount:    d.DealAmount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFxDeal converts a model FxDeal to a domain FxDeal
func ToDomainFxDeal(m models.FxDeal) domain.FxDeal {
	return domain.FxDeal{
		ID:            m.ID,
		DealUniqueID:  m.DealUniqueID,
		FromCurrency:  m.FromCurrency,
		ToCurrency:    m.ToCurrency,
		DealTimestamp: m.DealTimestamp,
		DealAmount:    m.DealAmount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFxDealSlice converts a slice of model FxDeals to a slice of domain FxDeals
func ToDomainFxDealSlice(ms []models.FxDeal) []domain.FxDeal {
	ds := make([]domain.FxDeal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFxDeal(m)
	}
	return ds
}
