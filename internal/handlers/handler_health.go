package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/middleware"
	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler answers liveness checks. A nil db skips the database ping.
func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				middleware.GetLoggerFromContext(c).Error("Database ping failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("Database unavailable", nil))
				return
			}
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse("OK", nil, nil))
	}
}
