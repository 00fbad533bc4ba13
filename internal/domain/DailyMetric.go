package domain

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DailyMetric representa uma linha da tabela sales_data: o consolidado de um dia
type DailyMetric struct {
	Date           time.Time
	Sales          decimal.Decimal
	Customers      int
	ConversionRate float64
}

// dailyMetricJSON é o formato de transporte consumido pelo dashboard
type dailyMetricJSON struct {
	Date           string  `json:"date"`
	Sales          float64 `json:"sales"`
	Customers      int     `json:"customers"`
	ConversionRate float64 `json:"conversion_rate"`
}

func (m DailyMetric) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyMetricJSON{
		Date:           m.Date.Format(time.DateOnly),
		Sales:          m.Sales.InexactFloat64(),
		Customers:      m.Customers,
		ConversionRate: m.ConversionRate,
	})
}

func (m *DailyMetric) UnmarshalJSON(data []byte) error {
	var raw dailyMetricJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(time.DateOnly, raw.Date)
	if err != nil {
		return fmt.Errorf("data inválida %q: %w", raw.Date, err)
	}

	m.Date = date
	m.Sales = decimal.NewFromFloat(raw.Sales)
	m.Customers = raw.Customers
	m.ConversionRate = raw.ConversionRate
	return nil
}
