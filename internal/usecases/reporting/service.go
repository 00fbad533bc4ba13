package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName          = "github.com/vfg2006/sales-dashboard-api/reporting"
	defaultQueryTimeout = 5 * time.Second
)

type Service struct {
	salesRepository repository.SalesDataRepository
	generator       SeriesGenerator
	cache           *RangeCache
	metrics         MetricsRecorder
	tracer          trace.Tracer
	queryTimeout    time.Duration
	maxRangeDays    int
}

// NewService monta o serviço de relatórios. cache e metrics podem ser nil.
func NewService(
	salesRepository repository.SalesDataRepository,
	generator SeriesGenerator,
	cache *RangeCache,
	metrics MetricsRecorder,
	cfg *config.Config,
) Reporter {
	if metrics == nil {
		metrics = noopRecorder{}
	}

	queryTimeout := cfg.Database.QueryTimeout
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	return &Service{
		salesRepository: salesRepository,
		generator:       generator,
		cache:           cache,
		metrics:         metrics,
		tracer:          otel.Tracer(tracerName),
		queryTimeout:    queryTimeout,
		maxRangeDays:    cfg.Report.MaxRangeDays,
	}
}

func (s *Service) FetchRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyMetric, error) {
	result, err := s.Fetch(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// Fetch lê o intervalo do banco. Sem registros (ou com o banco fora), gera a série,
// tenta persisti-la e a devolve mesmo que a gravação falhe.
func (s *Service) Fetch(ctx context.Context, startDate, endDate time.Time) (*domain.RangeResult, error) {
	ctx, span := s.tracer.Start(ctx, "reporting.Fetch")
	defer span.End()

	startDate, endDate, err := s.validateRange(startDate, endDate)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("sales.start_date", startDate.Format(time.DateOnly)),
		attribute.String("sales.end_date", endDate.Format(time.DateOnly)),
	)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	})

	result := &domain.RangeResult{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if cached, ok := s.cache.Get(ctx, startDate, endDate); ok {
		result.Records = cached
		result.Source = domain.RangeSourceCache
		s.finish(span, logger, result)
		return result, nil
	}

	records, err := s.queryStore(ctx, startDate, endDate)
	if err != nil {
		logger.WithError(err).Warn("Banco indisponível, usando dados sintéticos")
		span.RecordError(err)
		s.metrics.ObserveStoreFailure()
	}

	if len(records) > 0 {
		result.Records = records
		result.Source = domain.RangeSourceStore
		s.cache.Set(ctx, startDate, endDate, records)
		s.finish(span, logger, result)
		return result, nil
	}

	result.Records = s.generator.Generate(startDate, endDate)
	result.Source = domain.RangeSourceSynthetic

	// banco que estourou o timeout na leitura não recebe a gravação
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("Consulta expirou, dados sintéticos não serão gravados")
	} else {
		result.Persisted = s.persist(ctx, logger, result.Records)
	}

	s.finish(span, logger, result)
	return result, nil
}

func (s *Service) finish(span trace.Span, logger log.Logger, result *domain.RangeResult) {
	span.SetAttributes(
		attribute.String("sales.source", string(result.Source)),
		attribute.Int("sales.rows", len(result.Records)),
	)
	s.metrics.ObserveFetch(result.Source, len(result.Records))

	logger.WithFields(log.Fields{
		"source":    result.Source,
		"rows":      len(result.Records),
		"persisted": result.Persisted,
	}).Debug("Intervalo de vendas carregado")
}

// queryStore consulta o banco com timeout; erros viram ErrStoreUnavailable
func (s *Service) queryStore(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyMetric, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	records, err := s.salesRepository.GetByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return records, nil
}

// persist grava os registros gerados; falhas só são logadas
func (s *Service) persist(ctx context.Context, logger log.Logger, records []*domain.DailyMetric) int {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	inserted, err := s.salesRepository.InsertIgnoringConflicts(ctx, records)
	if err != nil {
		logger.WithError(err).Warn("Erro ao persistir dados sintéticos, seguindo sem gravar")
		return 0
	}

	if inserted > 0 {
		s.metrics.ObservePersisted(inserted)
		s.cache.Bump(ctx)
	}
	if skipped := len(records) - inserted; skipped > 0 {
		logger.WithField("skipped", skipped).Info("Datas já existentes ignoradas na gravação")
	}

	return inserted
}

func (s *Service) Summarize(ctx context.Context, startDate, endDate time.Time) (*domain.SalesSummary, error) {
	records, err := s.FetchRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary, err := domain.Summarize(records)
	if err != nil {
		return nil, NewReportError(ErrInternal, apiErrors.ErrInternalServer, err.Error())
	}

	return summary, nil
}

// Backfill grava apenas as datas do intervalo que ainda não existem no banco
func (s *Service) Backfill(ctx context.Context, startDate, endDate time.Time) (*domain.BackfillResult, error) {
	ctx, span := s.tracer.Start(ctx, "reporting.Backfill")
	defer span.End()

	startDate, endDate, err := s.validateRange(startDate, endDate)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	})

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	existing, err := s.salesRepository.ExistingDates(queryCtx, startDate, endDate)
	cancel()
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveStoreFailure()
		return nil, NewReportError(ErrInternal, apiErrors.ErrDatabaseOperation, errors.Wrap(err, "datas existentes").Error())
	}

	generated := s.generator.Generate(startDate, endDate)
	missing := make([]*domain.DailyMetric, 0, len(generated))
	for _, record := range generated {
		if _, found := existing[record.Date.Format(time.DateOnly)]; !found {
			missing = append(missing, record)
		}
	}

	result := &domain.BackfillResult{
		StartDate: startDate,
		EndDate:   endDate,
		Requested: len(generated),
		Existing:  len(existing),
	}

	if len(missing) == 0 {
		logger.Info("Nenhuma data ausente no intervalo")
		return result, nil
	}

	insertCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	inserted, err := s.salesRepository.InsertIgnoringConflicts(insertCtx, missing)
	if err != nil {
		span.RecordError(err)
		return nil, NewReportError(ErrInternal, apiErrors.ErrDatabaseOperation, errors.Wrap(err, "inserção").Error())
	}

	result.Inserted = inserted
	if inserted > 0 {
		s.metrics.ObservePersisted(inserted)
		s.cache.Bump(ctx)
	}

	span.SetAttributes(attribute.Int("sales.inserted", inserted))
	logger.WithFields(log.Fields{
		"requested": result.Requested,
		"existing":  result.Existing,
		"inserted":  result.Inserted,
	}).Info("Backfill de vendas concluído")

	return result, nil
}

// validateRange normaliza as datas para meia-noite UTC e aplica os limites do intervalo
func (s *Service) validateRange(startDate, endDate time.Time) (time.Time, time.Time, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return time.Time{}, time.Time{}, NewReportError(ErrInvalidInput, apiErrors.ErrMissingRequiredData, "datas de início e fim são obrigatórias")
	}

	startDate, endDate = utils.DateOnly(startDate), utils.DateOnly(endDate)

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, NewReportError(ErrInvalidRange, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("data inicial %s é posterior à data final %s", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)))
	}

	if s.maxRangeDays > 0 {
		if days := utils.DaysInRange(startDate, endDate); days > s.maxRangeDays {
			return time.Time{}, time.Time{}, NewReportError(ErrRangeTooLarge, apiErrors.ErrInvalidRequest,
				fmt.Sprintf("período de %d dias excede o máximo de %d", days, s.maxRangeDays))
		}
	}

	return startDate, endDate, nil
}
