package reporting

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const daysPerWeek = 7

// Generator produz séries diárias plausíveis: sazonalidade semanal, tendência linear e ruído gaussiano.
// Seguro para uso concorrente.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	params config.Generator
}

func NewGenerator(params config.Generator) *Generator {
	seed := params.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if params.CustomerDivisor <= 0 {
		params.CustomerDivisor = 30
	}
	if params.VisitorMultiplierMin <= 0 {
		params.VisitorMultiplierMin = 1
	}
	if params.VisitorMultiplierMax < params.VisitorMultiplierMin {
		params.VisitorMultiplierMax = params.VisitorMultiplierMin
	}
	if params.MaxConversion < params.MinConversion {
		params.MaxConversion = params.MinConversion
	}

	return &Generator{
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
		params: params,
	}
}

// Generate devolve um registro por dia de [startDate, endDate], em ordem crescente.
// Intervalo invertido devolve uma série vazia.
func (g *Generator) Generate(startDate, endDate time.Time) []*domain.DailyMetric {
	dates := utils.DateRange(startDate, endDate)
	n := len(dates)

	g.mu.Lock()
	defer g.mu.Unlock()

	records := make([]*domain.DailyMetric, 0, n)
	for i, date := range dates {
		sales := g.sales(i, n)
		customers := g.customers(sales)

		records = append(records, &domain.DailyMetric{
			Date:           date,
			Sales:          decimal.NewFromFloat(sales).Round(2),
			Customers:      customers,
			ConversionRate: g.conversion(customers),
		})
	}

	return records
}

func (g *Generator) sales(i, n int) float64 {
	p := g.params

	weekly := math.Sin(float64(i)*2*math.Pi/daysPerWeek) * p.WeeklyAmplitude

	var trend float64
	if n > 1 {
		trend = p.TrendAmplitude * float64(i) / float64(n-1)
	}

	sales := p.BaseSales*(1+weekly+trend) + g.rng.NormFloat64()*p.NoiseStdDev
	return math.Max(sales, p.MinSales)
}

func (g *Generator) customers(sales float64) int {
	p := g.params

	customers := int(math.Round(sales / p.CustomerDivisor * (1 + g.rng.NormFloat64()*p.CustomerNoise)))
	return max(customers, p.MinCustomers, 0)
}

// conversion: visitantes = clientes × multiplicador uniforme em [min, max], taxa limitada à faixa configurada
func (g *Generator) conversion(customers int) float64 {
	p := g.params

	multiplier := p.VisitorMultiplierMin + g.rng.Float64()*(p.VisitorMultiplierMax-p.VisitorMultiplierMin)
	visitors := math.Round(float64(customers) * multiplier)

	rate := p.MinConversion
	if visitors > 0 {
		rate = float64(customers) / visitors
	}

	rate = math.Min(math.Max(rate, p.MinConversion), p.MaxConversion)
	return utils.RoundTo(rate, 4)
}
