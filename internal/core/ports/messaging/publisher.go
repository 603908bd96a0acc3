// Package messaging declares the outbound event ports of the service.
package messaging

import (
	"context"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
)

// DealEventPublisher announces deal lifecycle events to downstream consumers.
type DealEventPublisher interface {
	PublishDealRecorded(ctx context.Context, event domain.DealRecordedEvent) error
	Close() error
}
