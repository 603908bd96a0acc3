package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validRequest() dto.CreateFxDealRequest {
	return dto.CreateFxDealRequest{
		DealUniqueID:  "D-1",
		FromCurrency:  "usd",
		ToCurrency:    "EUR",
		DealTimestamp: dto.NewDateTime(fixedNow.AddDate(0, 0, -1)),
		DealAmount:    amount("100.5"),
	}
}

type ValidationServiceTestSuite struct {
	suite.Suite
	validator *services.ValidationService
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	suite.validator = services.NewValidationService(services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *ValidationServiceTestSuite) messages(err error) []string {
	suite.Require().Error(err)
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr), "expected *apperrors.ValidationError, got %T", err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	return verr.Messages()
}

func (suite *ValidationServiceTestSuite) TestValidRequest() {
	suite.NoError(suite.validator.Validate(validRequest()))
}

func (suite *ValidationServiceTestSuite) TestEmptyRequest_ReportsEveryField() {
	err := suite.validator.Validate(dto.CreateFxDealRequest{})

	suite.Equal([]string{
		"Deal unique ID is required",
		"From currency is required",
		"To currency is required",
		"Deal timestamp is required",
		"Deal amount is required",
	}, suite.messages(err))
	suite.Equal("Validation failed: Deal unique ID is required, From currency is required, To currency is required, Deal timestamp is required, Deal amount is required", err.Error())
}

func (suite *ValidationServiceTestSuite) TestDealUniqueID() {
	req := validRequest()
	req.DealUniqueID = "   "
	suite.Equal([]string{"Deal unique ID is required"}, suite.messages(suite.validator.Validate(req)))

	req.DealUniqueID = "deal 1!"
	suite.Equal([]string{"Deal unique ID can only contain alphanumeric characters, hyphens, and underscores"},
		suite.messages(suite.validator.Validate(req)))

	req.DealUniqueID = strings.Repeat("a", 255)
	suite.NoError(suite.validator.Validate(req))

	req.DealUniqueID = strings.Repeat("a", 256)
	suite.Equal([]string{"Deal unique ID cannot exceed 255 characters"}, suite.messages(suite.validator.Validate(req)))

	req.DealUniqueID = strings.Repeat("#", 256)
	suite.Equal([]string{
		"Deal unique ID cannot exceed 255 characters",
		"Deal unique ID can only contain alphanumeric characters, hyphens, and underscores",
	}, suite.messages(suite.validator.Validate(req)))
}

func (suite *ValidationServiceTestSuite) TestCurrencies() {
	req := validRequest()
	req.FromCurrency = "XYZ"
	req.ToCurrency = "US"
	suite.Equal([]string{
		"From currency must be a valid ISO 4217 currency code",
		"To currency must be a valid ISO 4217 currency code",
	}, suite.messages(suite.validator.Validate(req)))
}

func (suite *ValidationServiceTestSuite) TestSameCurrencyPair_CaseInsensitive() {
	req := validRequest()
	req.FromCurrency = "usd"
	req.ToCurrency = "USD"

	err := suite.validator.Validate(req)

	suite.Equal([]string{"From currency and to currency must be different"}, suite.messages(err))
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal(map[string]string{"currencyPair": "From currency and to currency must be different"}, verr.Fields())
}

func (suite *ValidationServiceTestSuite) TestTimestampBounds() {
	req := validRequest()

	req.DealTimestamp = dto.NewDateTime(fixedNow)
	suite.NoError(suite.validator.Validate(req), "now is allowed")

	req.DealTimestamp = dto.NewDateTime(fixedNow.Add(time.Second))
	suite.Equal([]string{"Deal timestamp cannot be in the future"}, suite.messages(suite.validator.Validate(req)))

	req.DealTimestamp = dto.NewDateTime(fixedNow.AddDate(-1, 0, 0))
	suite.NoError(suite.validator.Validate(req), "exactly one year old is allowed")

	req.DealTimestamp = dto.NewDateTime(fixedNow.AddDate(-1, 0, 0).Add(-time.Second))
	suite.Equal([]string{"Deal timestamp cannot be older than one year"}, suite.messages(suite.validator.Validate(req)))
}

func (suite *ValidationServiceTestSuite) TestAmountBounds() {
	tests := []struct {
		amount string
		want   []string
	}{
		{amount: "0.0001"},
		{amount: "999999999999999.9999"},
		{amount: "0", want: []string{"Deal amount must be greater than zero"}},
		{amount: "-5", want: []string{"Deal amount must be greater than zero"}},
		{amount: "1000000000000000", want: []string{"Deal amount exceeds maximum allowed value"}},
		{amount: "1.23456", want: []string{"Deal amount cannot have more than 4 decimal places"}},
		{amount: "-0.00001", want: []string{
			"Deal amount must be greater than zero",
			"Deal amount cannot have more than 4 decimal places",
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.amount, func() {
			req := validRequest()
			req.DealAmount = amount(tt.amount)
			err := suite.validator.Validate(req)
			if tt.want == nil {
				suite.NoError(err)
				return
			}
			suite.Equal(tt.want, suite.messages(err))
		})
	}
}

func (suite *ValidationServiceTestSuite) TestViolationsFollowFieldOrder() {
	req := dto.CreateFxDealRequest{
		DealUniqueID:  "bad id",
		FromCurrency:  "EUR",
		ToCurrency:    "eur",
		DealTimestamp: dto.NewDateTime(fixedNow.Add(time.Hour)),
		DealAmount:    amount("0"),
	}

	suite.Equal([]string{
		"Deal unique ID can only contain alphanumeric characters, hyphens, and underscores",
		"From currency and to currency must be different",
		"Deal timestamp cannot be in the future",
		"Deal amount must be greater than zero",
	}, suite.messages(suite.validator.Validate(req)))
}

func TestValidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
