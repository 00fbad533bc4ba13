package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var (
	ErrEmptySeries     = errors.New("no records to summarize")
	ErrUndefinedChange = errors.New("percent change undefined: first value is zero")
	ErrNoCustomers     = errors.New("average order value undefined: no customers")
)

// SummaryChanges guarda a variação percentual entre o primeiro e o último dia.
// nil quando a variação não é definida (primeiro valor zero).
type SummaryChanges struct {
	Sales             *float64 `json:"sales"`
	Customers         *float64 `json:"customers"`
	ConversionRate    *float64 `json:"conversion_rate"`
	AverageOrderValue *float64 `json:"avg_order_value"`
}

// SalesSummary são os KPIs exibidos nos cards do dashboard
type SalesSummary struct {
	StartDate         time.Time
	EndDate           time.Time
	Days              int
	TotalSales        decimal.Decimal
	TotalCustomers    int
	AverageConversion float64
	AverageOrderValue *decimal.Decimal
	Changes           SummaryChanges
}

type salesSummaryJSON struct {
	StartDate         string         `json:"start_date"`
	EndDate           string         `json:"end_date"`
	Days              int            `json:"days"`
	TotalSales        float64        `json:"total_sales"`
	TotalCustomers    int            `json:"total_customers"`
	AverageConversion float64        `json:"avg_conversion_rate"`
	AverageOrderValue *float64       `json:"avg_order_value"`
	Changes           SummaryChanges `json:"changes"`
}

func (s SalesSummary) MarshalJSON() ([]byte, error) {
	out := salesSummaryJSON{
		StartDate:         s.StartDate.Format(time.DateOnly),
		EndDate:           s.EndDate.Format(time.DateOnly),
		Days:              s.Days,
		TotalSales:        s.TotalSales.InexactFloat64(),
		TotalCustomers:    s.TotalCustomers,
		AverageConversion: s.AverageConversion,
		Changes:           s.Changes,
	}
	if s.AverageOrderValue != nil {
		aov := s.AverageOrderValue.InexactFloat64()
		out.AverageOrderValue = &aov
	}
	return json.Marshal(out)
}

// PercentChange calcula (last - first) / first * 100
func PercentChange(first, last float64) (float64, error) {
	if first == 0 {
		return 0, ErrUndefinedChange
	}
	return (last - first) / first * 100, nil
}

// AverageOrderValue calcula o ticket médio (vendas / clientes)
func AverageOrderValue(totalSales decimal.Decimal, totalCustomers int) (decimal.Decimal, error) {
	if totalCustomers == 0 {
		return decimal.Zero, ErrNoCustomers
	}
	return totalSales.Div(decimal.NewFromInt(int64(totalCustomers))).Round(2), nil
}

// Summarize calcula os KPIs de uma série ordenada por data
func Summarize(records []*DailyMetric) (*SalesSummary, error) {
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}

	first := records[0]
	last := records[len(records)-1]

	summary := &SalesSummary{
		StartDate:  first.Date,
		EndDate:    last.Date,
		Days:       len(records),
		TotalSales: decimal.Zero,
	}

	var conversionSum float64
	for _, record := range records {
		summary.TotalSales = summary.TotalSales.Add(record.Sales)
		summary.TotalCustomers += record.Customers
		conversionSum += record.ConversionRate
	}
	summary.TotalSales = summary.TotalSales.Round(2)
	summary.AverageConversion = utils.RoundTo(conversionSum/float64(len(records)), 4)

	if aov, err := AverageOrderValue(summary.TotalSales, summary.TotalCustomers); err == nil {
		summary.AverageOrderValue = &aov
	}

	summary.Changes = SummaryChanges{
		Sales:          changeOrNil(first.Sales.InexactFloat64(), last.Sales.InexactFloat64()),
		Customers:      changeOrNil(float64(first.Customers), float64(last.Customers)),
		ConversionRate: changeOrNil(first.ConversionRate, last.ConversionRate),
	}

	firstAOV, errFirst := AverageOrderValue(first.Sales, first.Customers)
	lastAOV, errLast := AverageOrderValue(last.Sales, last.Customers)
	if errFirst == nil && errLast == nil {
		summary.Changes.AverageOrderValue = changeOrNil(firstAOV.InexactFloat64(), lastAOV.InexactFloat64())
	}

	return summary, nil
}

func changeOrNil(first, last float64) *float64 {
	change, err := PercentChange(first, last)
	if err != nil {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(change)
	return &rounded
}
