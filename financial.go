package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// FinancialService groups the farm finance operations.
type FinancialService struct {
	b backend
}

// GetExpenses returns a farm's expenses. Dates are ISO 8601 strings; an
// empty date bound is not sent.
func (s *FinancialService) GetExpenses(ctx context.Context, farmID int, startDate, endDate string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/financial.getExpenses", nil, q, nil)
}

// GetRevenue returns a farm's revenue. Dates are ISO 8601 strings; an
// empty date bound is not sent.
func (s *FinancialService) GetRevenue(ctx context.Context, farmID int, startDate, endDate string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/financial.getRevenue", nil, q, nil)
}

// GetSummary returns a rolling financial summary. A months value of 0
// requests the default 12-month window.
func (s *FinancialService) GetSummary(ctx context.Context, farmID, months int) (json.RawMessage, error) {
	if months == 0 {
		months = 12
	}
	q := url.Values{}
	q.Set("farmId", strconv.Itoa(farmID))
	q.Set("months", strconv.Itoa(months))
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/financial.getSummary", nil, q, nil)
}

// AddExpense records an expense.
func (s *FinancialService) AddExpense(ctx context.Context, expense any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/financial.addExpense", expense, nil, nil)
}

// AddRevenue records a revenue entry.
func (s *FinancialService) AddRevenue(ctx context.Context, revenue any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/financial.addRevenue", revenue, nil, nil)
}
