package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/middleware"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/currency"
	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 10

// fxDealHandler handles HTTP requests related to FX deals.
type fxDealHandler struct {
	fxDealService portssvc.FxDealSvcFacade
}

func newFxDealHandler(fs portssvc.FxDealSvcFacade) *fxDealHandler {
	return &fxDealHandler{fxDealService: fs}
}

// RegisterFxDealRoutes registers the /fx-deals routes on rg.
func RegisterFxDealRoutes(rg *gin.RouterGroup, fxDealService portssvc.FxDealSvcFacade) {
	h := newFxDealHandler(fxDealService)

	deals := rg.Group("/fx-deals")
	{
		deals.POST("", h.createFxDeal)
		deals.GET("", h.listFxDeals)
		deals.GET("/recent", h.listRecentFxDeals)
		deals.GET("/count", h.countFxDeals)
		deals.GET("/currencies", h.listSupportedCurrencies)
		deals.GET("/health", h.healthCheck)
		deals.GET("/date-range", h.listFxDealsByDateRange)
		deals.GET("/id/:id", h.getFxDealByID)
		deals.GET("/from/:currency", h.listFxDealsByFromCurrency)
		deals.GET("/to/:currency", h.listFxDealsByToCurrency)
		deals.GET("/currency-pair/:from/:to", h.listFxDealsByCurrencyPair)
		deals.GET("/currency-pair/:from/:to/count", h.countFxDealsByCurrencyPair)
		deals.GET("/:dealUniqueId", h.getFxDealByUniqueID)
		deals.GET("/:dealUniqueId/exists", h.existsByDealUniqueID)
	}
}

// createFxDeal godoc
// @Summary Record a new FX deal
// @Description Validates the deal, rejects duplicates by deal unique ID, normalizes the currency codes and stores it
// @Tags fx-deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.CreateFxDealRequest true "Deal details"
// @Success 201 {object} dto.APIResponse{data=dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Deal unique ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to save FX deal"
// @Router /fx-deals [post]
func (h *fxDealHandler) createFxDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateFxDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFxDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error(), nil))
		return
	}

	logger = logger.With(slog.String("deal_unique_id", req.DealUniqueID))
	logger.Info("Received request to create FX deal")

	deal, err := h.fxDealService.CreateFxDeal(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "creating FX deal")
		return
	}

	logger.Info("FX deal created successfully", slog.Int64("id", deal.ID))
	c.JSON(http.StatusCreated, dto.NewAPIResponse("FX deal created successfully", dto.ToFxDealResponse(deal), nil))
}

// listFxDeals godoc
// @Summary List FX deals
// @Description Lists every deal, newest deal timestamp first. Passing pageSize or nextToken switches to keyset pagination.
// @Tags fx-deals
// @Produce  json
// @Param   pageSize query int false "Page size (1-1000)"
// @Param   nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.APIResponse{data=[]dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid paging parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list FX deals"
// @Router /fx-deals [get]
func (h *fxDealHandler) listFxDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	pageSizeRaw, paged := c.GetQuery("pageSize")
	nextToken, hasToken := c.GetQuery("nextToken")

	if !paged && !hasToken {
		logger.Debug("Received request to list all FX deals")
		deals, err := h.fxDealService.ListFxDeals(c.Request.Context())
		if err != nil {
			respondWithError(c, logger, err, "listing FX deals")
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals retrieved successfully", dto.ToListFxDealResponse(deals),
			map[string]any{"totalCount": len(deals)}))
		return
	}

	pageSize := 0
	if paged {
		n, err := strconv.Atoi(pageSizeRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Page size must be an integer", nil))
			return
		}
		pageSize = n
	}

	deals, token, err := h.fxDealService.ListFxDealsPage(c.Request.Context(), nextToken, pageSize)
	if err != nil {
		respondWithError(c, logger, err, "listing FX deals page")
		return
	}

	metadata := map[string]any{"totalCount": len(deals)}
	if token != "" {
		metadata["nextToken"] = token
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals retrieved successfully", dto.ToListFxDealResponse(deals), metadata))
}

// getFxDealByUniqueID godoc
// @Summary Get an FX deal by its unique ID
// @Tags fx-deals
// @Produce  json
// @Param   dealUniqueId path string true "Deal unique ID"
// @Success 200 {object} dto.APIResponse{data=dto.FxDealResponse}
// @Failure 404 {object} dto.ErrorResponse "Deal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve FX deal"
// @Router /fx-deals/{dealUniqueId} [get]
func (h *fxDealHandler) getFxDealByUniqueID(c *gin.Context) {
	dealUniqueID := c.Param("dealUniqueId")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("deal_unique_id", dealUniqueID))
	logger.Debug("Received request to get FX deal by unique ID")

	deal, err := h.fxDealService.GetFxDealByUniqueID(c.Request.Context(), dealUniqueID)
	if err != nil {
		respondWithError(c, logger, err, "getting FX deal")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deal retrieved successfully", dto.ToFxDealResponse(deal), nil))
}

// getFxDealByID godoc
// @Summary Get an FX deal by its numeric ID
// @Tags fx-deals
// @Produce  json
// @Param   id path int true "Deal ID"
// @Success 200 {object} dto.APIResponse{data=dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Deal not found"
// @Router /fx-deals/id/{id} [get]
func (h *fxDealHandler) getFxDealByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Deal ID must be a positive number", nil))
		return
	}

	deal, err := h.fxDealService.GetFxDealByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("id", id)), err, "getting FX deal by ID")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deal retrieved successfully", dto.ToFxDealResponse(deal), nil))
}

// existsByDealUniqueID godoc
// @Summary Check whether an FX deal exists
// @Tags fx-deals
// @Produce  json
// @Param   dealUniqueId path string true "Deal unique ID"
// @Success 200 {object} dto.APIResponse{data=bool}
// @Router /fx-deals/{dealUniqueId}/exists [get]
func (h *fxDealHandler) existsByDealUniqueID(c *gin.Context) {
	dealUniqueID := c.Param("dealUniqueId")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("deal_unique_id", dealUniqueID))

	exists, err := h.fxDealService.ExistsByDealUniqueID(c.Request.Context(), dealUniqueID)
	if err != nil {
		respondWithError(c, logger, err, "checking FX deal existence")
		return
	}

	logger.Debug("FX deal existence checked", slog.Bool("exists", exists))
	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deal existence check completed", exists,
		map[string]any{"dealUniqueId": dealUniqueID}))
}

// listFxDealsByCurrencyPair godoc
// @Summary List FX deals for a currency pair
// @Tags fx-deals
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.APIResponse{data=[]dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code provided"
// @Router /fx-deals/currency-pair/{from}/{to} [get]
func (h *fxDealHandler) listFxDealsByCurrencyPair(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("currency_pair", from+"/"+to))

	deals, err := h.fxDealService.ListFxDealsByCurrencyPair(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, logger, err, "listing FX deals by currency pair")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals retrieved successfully", dto.ToListFxDealResponse(deals),
		map[string]any{"currencyPair": from + "/" + to, "totalCount": len(deals)}))
}

// countFxDealsByCurrencyPair godoc
// @Summary Count FX deals for a currency pair
// @Tags fx-deals
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.APIResponse{data=int}
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code provided"
// @Router /fx-deals/currency-pair/{from}/{to}/count [get]
func (h *fxDealHandler) countFxDealsByCurrencyPair(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("currency_pair", from+"/"+to))

	count, err := h.fxDealService.CountFxDealsByCurrencyPair(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, logger, err, "counting FX deals by currency pair")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals count retrieved successfully", count,
		map[string]any{"currencyPair": from + "/" + to}))
}

// listFxDealsByFromCurrency godoc
// @Summary List FX deals by source currency
// @Tags fx-deals
// @Produce  json
// @Param   currency path string true "Source currency code"
// @Success 200 {object} dto.APIResponse{data=[]dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code provided"
// @Router /fx-deals/from/{currency} [get]
func (h *fxDealHandler) listFxDealsByFromCurrency(c *gin.Context) {
	code := c.Param("currency")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("from_currency", code))

	deals, err := h.fxDealService.ListFxDealsByFromCurrency(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger, err, "listing FX deals by from currency")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals retrieved successfully", dto.ToListFxDealResponse(deals),
		map[string]any{"fromCurrency": code, "totalCount": len(deals)}))
}

// listFxDealsByToCurrency godoc
// @Summary List FX deals by target currency
// @Tags fx-deals
// @Produce  json
// @Param   currency path string true "Target currency code"
// @Success 200 {object} dto.APIResponse{data=[]dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code provided"
// @Router /fx-deals/to/{currency} [get]
func (h *fxDealHandler) listFxDealsByToCurrency(c *gin.Context) {
	code := c.Param("currency")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("to_currency", code))

	deals, err := h.fxDealService.ListFxDealsByToCurrency(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger, err, "listing FX deals by to currency")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals retrieved successfully", dto.ToListFxDealResponse(deals),
		map[string]any{"toCurrency": code, "totalCount": len(deals)}))
}

// listFxDealsByDateRange godoc
// @Summary List FX deals within a date range
// @Description Both bounds are inclusive ISO-8601 date-times; values without an offset are read as UTC
// @Tags fx-deals
// @Produce  json
// @Param   startDate query string true "Range start" example(2026-01-01T00:00:00)
// @Param   endDate query string true "Range end" example(2026-01-31T23:59:59)
// @Success 200 {object} dto.APIResponse{data=[]dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing, malformed or inverted range"
// @Router /fx-deals/date-range [get]
func (h *fxDealHandler) listFxDealsByDateRange(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	start, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}

	deals, err := h.fxDealService.ListFxDealsByDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, logger, err, "listing FX deals by date range")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("FX deals retrieved successfully", dto.ToListFxDealResponse(deals),
		map[string]any{
			"startDate":  start.Format(time.RFC3339Nano),
			"endDate":    end.Format(time.RFC3339Nano),
			"totalCount": len(deals),
		}))
}

// parseDateQuery reads an optional date-time query parameter. A missing value yields the
// zero time so the service can report it; a malformed one is answered here with 400.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := dto.ParseDateTime(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+": expected an ISO-8601 date-time", nil))
		return time.Time{}, false
	}
	return t, true
}

// listRecentFxDeals godoc
// @Summary List the most recently recorded FX deals
// @Tags fx-deals
// @Produce  json
// @Param   limit query int false "Number of deals (1-1000)" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.FxDealResponse}
// @Failure 400 {object} dto.ErrorResponse "Limit out of range"
// @Router /fx-deals/recent [get]
func (h *fxDealHandler) listRecentFxDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Limit must be an integer", nil))
			return
		}
		limit = n
	}

	deals, err := h.fxDealService.ListRecentFxDeals(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, logger, err, "listing recent FX deals")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("Recent FX deals retrieved successfully", dto.ToListFxDealResponse(deals),
		map[string]any{"limit": limit, "totalCount": len(deals)}))
}

// countFxDeals godoc
// @Summary Count all FX deals
// @Tags fx-deals
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=int}
// @Router /fx-deals/count [get]
func (h *fxDealHandler) countFxDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	count, err := h.fxDealService.CountFxDeals(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "counting FX deals")
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse("Total FX deals count retrieved successfully", count, nil))
}

// listSupportedCurrencies godoc
// @Summary List the currency codes accepted for FX deals
// @Tags fx-deals
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /fx-deals/currencies [get]
func (h *fxDealHandler) listSupportedCurrencies(c *gin.Context) {
	codes := currency.SupportedCurrencies()
	c.JSON(http.StatusOK, dto.NewAPIResponse("Supported currencies retrieved successfully", codes,
		map[string]any{"totalCount": len(codes)}))
}

// healthCheck godoc
// @Summary FX deals service health
// @Tags fx-deals
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=string}
// @Router /fx-deals/health [get]
func (h *fxDealHandler) healthCheck(c *gin.Context) {
	middleware.GetLoggerFromContext(c).Debug("Health check requested")
	c.JSON(http.StatusOK, dto.NewAPIResponse("FX Deals service is healthy", "OK",
		map[string]any{"timestamp": time.Now().UTC().Format(time.RFC3339Nano)}))
}
