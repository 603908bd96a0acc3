package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxDeal is a recorded foreign-exchange deal.
// ID is assigned by storage; DealUniqueID is the caller's business key and is unique.
type FxDeal struct {
	ID            int64           `json:"id"`
	DealUniqueID  string          `json:"dealUniqueId"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	DealTimestamp time.Time       `json:"dealTimestamp"`
	DealAmount    decimal.Decimal `json:"dealAmount"`
	AuditFields
}

// CurrencyPair renders the pair as FROM/TO.
func (d FxDeal) CurrencyPair() string {
	return d.FromCurrency + "/" + d.ToCurrency
}

// FxDealCursor marks a position in the deal list ordered by deal timestamp then ID, both descending.
type FxDealCursor struct {
	DealTimestamp time.Time
	ID            int64
}

// CursorAfter returns the cursor that continues listing after d.
func (d FxDeal) CursorAfter() FxDealCursor {
	return FxDealCursor{DealTimestamp: d.DealTimestamp, ID: d.ID}
}

// DealRecordedEvent is emitted once a deal has been committed to storage.
type DealRecordedEvent struct {
	ID            int64           `json:"id"`
	DealUniqueID  string          `json:"dealUniqueId"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	DealTimestamp time.Time       `json:"dealTimestamp"`
	DealAmount    decimal.Decimal `json:"dealAmount"`
	RecordedAt    time.Time       `json:"recordedAt"`
}

// NewDealRecordedEvent builds the event for a stored deal.
func NewDealRecordedEvent(d FxDeal) DealRecordedEvent {
	return DealRecordedEvent{
		ID:            d.ID,
		DealUniqueID:  d.DealUniqueID,
		FromCurrency:  d.FromCurrency,
		ToCurrency:    d.ToCurrency,
		DealTimestamp: d.DealTimestamp,
		DealAmount:    d.DealAmount,
		RecordedAt:    d.CreatedAt,
	}
}
