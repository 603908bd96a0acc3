package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "An unexpected error occurred"

// respondWithError maps a service error onto the error envelope.
// Validation failures carry their field map; server errors never expose the cause.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		logger.Warn("Validation error "+action, slog.String("error", err.Error()))
		c.JSON(status, dto.NewErrorResponse(verr.Error(), verr.Fields()))
		return
	}

	var appErr *apperrors.AppError
	hasAppErr := errors.As(err, &appErr)
	if status < http.StatusInternalServerError {
		logger.Warn("Request rejected "+action, slog.Int("status", status), slog.String("error", err.Error()))
		message := err.Error()
		if hasAppErr {
			message = appErr.Message
		}
		c.JSON(status, dto.NewErrorResponse(message, nil))
		return
	}

	logger.Error("Failed "+action, slog.String("error", err.Error()))
	message := genericErrorMessage
	if hasAppErr && appErr.Message != "" {
		message = appErr.Message
	}
	c.JSON(status, dto.NewErrorResponse(message, nil))
}
