package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/currency"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var dealIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// maxDealAmount fits NUMERIC(19,4).
var maxDealAmount = decimal.RequireFromString("999999999999999.9999")

const maxDealAmountScale = 4

// dealRules lists every rule in reporting order. The key is "<json field>.<tag>".
var dealRules = []struct {
	key     string
	message string
}{
	{"dealUniqueId.notblank", "Deal unique ID is required"},
	{"dealUniqueId.max", "Deal unique ID cannot exceed 255 characters"},
	{"dealUniqueId.dealid", "Deal unique ID can only contain alphanumeric characters, hyphens, and underscores"},
	{"fromCurrency.notblank", "From currency is required"},
	{"fromCurrency.fxcurrency", "From currency must be a valid ISO 4217 currency code"},
	{"toCurrency.notblank", "To currency is required"},
	{"toCurrency.fxcurrency", "To currency must be a valid ISO 4217 currency code"},
	{"currencyPair.distinct", "From currency and to currency must be different"},
	{"dealTimestamp.required", "Deal timestamp is required"},
	{"dealTimestamp.notfuture", "Deal timestamp cannot be in the future"},
	{"dealTimestamp.maxage", "Deal timestamp cannot be older than one year"},
	{"dealAmount.required", "Deal amount is required"},
	{"dealAmount.positive", "Deal amount must be greater than zero"},
	{"dealAmount.max", "Deal amount exceeds maximum allowed value"},
	{"dealAmount.scale", "Deal amount cannot have more than 4 decimal places"},
}

var dealRuleRank = func() map[string]int {
	ranks := make(map[string]int, len(dealRules))
	for i, r := range dealRules {
		ranks[r.key] = i
	}
	return ranks
}()

// ValidationService checks create requests. Every violated rule is reported, not just the first.
type ValidationService struct {
	validate *validator.Validate
	now      func() time.Time
}

// ValidationOption configures a ValidationService.
type ValidationOption func(*ValidationService)

// WithClock overrides the time source used by the timestamp rules.
func WithClock(now func() time.Time) ValidationOption {
	return func(s *ValidationService) {
		s.now = now
	}
}

// NewValidationService creates a ValidationService with its custom validations registered.
func NewValidationService(opts ...ValidationOption) *ValidationService {
	s := &ValidationService{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.validate.RegisterTagNameFunc(jsonFieldName)
	mustRegister(s.validate.RegisterValidation("notblank", validators.NotBlank))
	mustRegister(s.validate.RegisterValidation("fxcurrency", validateCurrencyCode))
	s.validate.RegisterStructValidation(s.validateDealRules, dto.CreateFxDealRequest{})

	return s
}

var _ portssvc.RequestValidatorSvc = (*ValidationService)(nil)

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// validateCurrencyCode passes blank values so that notblank alone reports them.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return strings.TrimSpace(code) == "" || currency.IsValidCurrency(code)
}

// validateDealRules covers the rules that span fields or depend on the clock.
func (s *ValidationService) validateDealRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateFxDealRequest)

	id := req.DealUniqueID
	if strings.TrimSpace(id) != "" && !dealIDPattern.MatchString(id) {
		sl.ReportError(id, "dealUniqueId", "DealUniqueID", "dealid", "")
	}

	from, to := strings.TrimSpace(req.FromCurrency), strings.TrimSpace(req.ToCurrency)
	if from != "" && to != "" && strings.EqualFold(from, to) {
		sl.ReportError(req.ToCurrency, "currencyPair", "ToCurrency", "distinct", "")
	}

	if req.DealTimestamp != nil {
		now := s.now()
		ts := req.DealTimestamp.Time
		if ts.After(now) {
			sl.ReportError(ts, "dealTimestamp", "DealTimestamp", "notfuture", "")
		}
		if ts.Before(now.AddDate(-1, 0, 0)) {
			sl.ReportError(ts, "dealTimestamp", "DealTimestamp", "maxage", "")
		}
	}

	if req.DealAmount != nil {
		amount := *req.DealAmount
		if amount.Sign() <= 0 {
			sl.ReportError(amount, "dealAmount", "DealAmount", "positive", "")
		}
		if amount.GreaterThan(maxDealAmount) {
			sl.ReportError(amount, "dealAmount", "DealAmount", "max", maxDealAmount.String())
		}
		if -amount.Exponent() > maxDealAmountScale {
			sl.ReportError(amount, "dealAmount", "DealAmount", "scale", fmt.Sprint(maxDealAmountScale))
		}
	}
}

// Validate returns nil or an *apperrors.ValidationError with the violations in reporting order.
func (s *ValidationService) Validate(req dto.CreateFxDealRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate deal request: %w", err)
	}

	type ranked struct {
		rank      int
		violation apperrors.FieldViolation
	}
	found := make([]ranked, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Field() + "." + fe.Tag()
		rank, ok := dealRuleRank[key]
		if !ok {
			// Unknown rules sort last and keep the validator's own wording.
			found = append(found, ranked{rank: len(dealRules), violation: apperrors.FieldViolation{Field: fe.Field(), Message: fe.Error()}})
			continue
		}
		found = append(found, ranked{rank: rank, violation: apperrors.FieldViolation{Field: fe.Field(), Message: dealRules[rank].message}})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].rank < found[j].rank })

	verr := &apperrors.ValidationError{}
	for _, f := range found {
		verr.Add(f.violation.Field, f.violation.Message)
	}
	return verr
}
