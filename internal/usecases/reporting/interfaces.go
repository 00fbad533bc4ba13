package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporting.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter define a interface de leitura dos dados de vendas usada pelos handlers
type Reporter interface {
	Backfiller

	// FetchRange devolve os registros do intervalo, gerando e persistindo quando o banco não tem dados
	FetchRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyMetric, error)

	// Fetch é o FetchRange com a origem dos dados explícita (store, synthetic ou cache)
	Fetch(ctx context.Context, startDate, endDate time.Time) (*domain.RangeResult, error)

	// Summarize calcula os KPIs do intervalo
	Summarize(ctx context.Context, startDate, endDate time.Time) (*domain.SalesSummary, error)
}

// Backfiller completa as datas ausentes de um intervalo sem tocar nas existentes
type Backfiller interface {
	Backfill(ctx context.Context, startDate, endDate time.Time) (*domain.BackfillResult, error)
}

// SeriesGenerator produz uma série diária sintética para o intervalo
type SeriesGenerator interface {
	Generate(startDate, endDate time.Time) []*domain.DailyMetric
}

// MetricsRecorder recebe os eventos do serviço para observabilidade
type MetricsRecorder interface {
	ObserveFetch(source domain.RangeSource, rows int)
	ObserveStoreFailure()
	ObservePersisted(rows int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveFetch(domain.RangeSource, int) {}
func (noopRecorder) ObserveStoreFailure()                 {}
func (noopRecorder) ObservePersisted(int)                 {}
