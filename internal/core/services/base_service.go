package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	"github.com/SscSPs/fx_deals_warehouse/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// withinTx runs fn in a transaction when a TxManager is configured, and directly otherwise.
func (s *BaseService) withinTx(ctx context.Context, readOnly bool, fn func(ctx context.Context) error) error {
	if s.TxManager == nil {
		return fn(ctx)
	}
	return s.TxManager.WithinTx(ctx, readOnly, fn)
}

// readInTx runs a single read-only query and returns its result.
func readInTx[T any](ctx context.Context, s *BaseService, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := s.withinTx(ctx, true, func(txCtx context.Context) error {
		var err error
		result, err = fn(txCtx)
		return err
	})
	return result, err
}
