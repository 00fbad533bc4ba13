package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		Database: config.Database{QueryTimeout: time.Second},
		Report:   config.Report{MaxRangeDays: 3660},
	}
}

func jan(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func storedRecords(days ...int) []*domain.DailyMetric {
	records := make([]*domain.DailyMetric, 0, len(days))
	for _, d := range days {
		records = append(records, &domain.DailyMetric{
			Date:           jan(d),
			Sales:          decimal.NewFromInt(int64(1000 * d)),
			Customers:      10 * d,
			ConversionRate: 0.2,
		})
	}
	return records
}

func TestService_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockSalesDataRepository(ctrl)
	mockGenerator := mocks.NewMockSeriesGenerator(ctrl)
	mockMetrics := mocks.NewMockMetricsRecorder(ctrl)

	service := NewService(mockRepo, mockGenerator, nil, mockMetrics, testConfig())

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		setup    func()
		wantErr  error
		validate func(t *testing.T, result *domain.RangeResult)
	}{
		{
			name:  "Banco com dados - devolve sem gerar nem gravar",
			start: jan(1),
			end:   jan(3),
			setup: func() {
				mockRepo.EXPECT().
					GetByDateRange(gomock.Any(), jan(1), jan(3)).
					Return(storedRecords(1, 2, 3), nil)
				mockMetrics.EXPECT().ObserveFetch(domain.RangeSourceStore, 3)
			},
			validate: func(t *testing.T, result *domain.RangeResult) {
				assert.Equal(t, domain.RangeSourceStore, result.Source)
				assert.Len(t, result.Records, 3)
				assert.Zero(t, result.Persisted)
			},
		},
		{
			name:  "Cobertura parcial - devolve apenas o que existe",
			start: jan(1),
			end:   jan(5),
			setup: func() {
				mockRepo.EXPECT().
					GetByDateRange(gomock.Any(), jan(1), jan(5)).
					Return(storedRecords(2, 4), nil)
				mockMetrics.EXPECT().ObserveFetch(domain.RangeSourceStore, 2)
			},
			validate: func(t *testing.T, result *domain.RangeResult) {
				assert.Equal(t, domain.RangeSourceStore, result.Source)
				require.Len(t, result.Records, 2)
				assert.Equal(t, jan(2), result.Records[0].Date)
			},
		},
		{
			name:  "Banco vazio - gera, grava e devolve a série",
			start: jan(1),
			end:   jan(3),
			setup: func() {
				generated := storedRecords(1, 2, 3)
				mockRepo.EXPECT().
					GetByDateRange(gomock.Any(), jan(1), jan(3)).
					Return([]*domain.DailyMetric{}, nil)
				mockGenerator.EXPECT().Generate(jan(1), jan(3)).Return(generated)
				mockRepo.EXPECT().InsertIgnoringConflicts(gomock.Any(), generated).Return(3, nil)
				mockMetrics.EXPECT().ObservePersisted(3)
				mockMetrics.EXPECT().ObserveFetch(domain.RangeSourceSynthetic, 3)
			},
			validate: func(t *testing.T, result *domain.RangeResult) {
				assert.Equal(t, domain.RangeSourceSynthetic, result.Source)
				assert.Len(t, result.Records, 3)
				assert.Equal(t, 3, result.Persisted)
			},
		},
		{
			name:  "Banco fora do ar - gera e devolve mesmo sem gravar",
			start: jan(1),
			end:   jan(2),
			setup: func() {
				generated := storedRecords(1, 2)
				mockRepo.EXPECT().
					GetByDateRange(gomock.Any(), jan(1), jan(2)).
					Return(nil, errors.New("connection refused"))
				mockMetrics.EXPECT().ObserveStoreFailure()
				mockGenerator.EXPECT().Generate(jan(1), jan(2)).Return(generated)
				mockRepo.EXPECT().
					InsertIgnoringConflicts(gomock.Any(), generated).
					Return(0, errors.New("connection refused"))
				mockMetrics.EXPECT().ObserveFetch(domain.RangeSourceSynthetic, 2)
			},
			validate: func(t *testing.T, result *domain.RangeResult) {
				assert.Equal(t, domain.RangeSourceSynthetic, result.Source)
				assert.Len(t, result.Records, 2)
				assert.Zero(t, result.Persisted)
			},
		},
		{
			name:  "Consulta expirou - gera e devolve sem tentar gravar",
			start: jan(1),
			end:   jan(2),
			setup: func() {
				generated := storedRecords(1, 2)
				mockRepo.EXPECT().
					GetByDateRange(gomock.Any(), jan(1), jan(2)).
					Return(nil, context.DeadlineExceeded)
				mockMetrics.EXPECT().ObserveStoreFailure()
				mockGenerator.EXPECT().Generate(jan(1), jan(2)).Return(generated)
				mockRepo.EXPECT().InsertIgnoringConflicts(gomock.Any(), gomock.Any()).Times(0)
				mockMetrics.EXPECT().ObserveFetch(domain.RangeSourceSynthetic, 2)
			},
			validate: func(t *testing.T, result *domain.RangeResult) {
				assert.Equal(t, domain.RangeSourceSynthetic, result.Source)
				assert.Len(t, result.Records, 2)
				assert.Zero(t, result.Persisted)
			},
		},
		{
			name:  "Datas com horário - normaliza para meia-noite UTC",
			start: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			setup: func() {
				mockRepo.EXPECT().
					GetByDateRange(gomock.Any(), jan(1), jan(1)).
					Return(storedRecords(1), nil)
				mockMetrics.EXPECT().ObserveFetch(domain.RangeSourceStore, 1)
			},
			validate: func(t *testing.T, result *domain.RangeResult) {
				assert.Equal(t, jan(1), result.StartDate)
				assert.Equal(t, jan(1), result.EndDate)
			},
		},
		{
			name:    "Intervalo invertido - erro sem consultar o banco",
			start:   jan(5),
			end:     jan(1),
			setup:   func() {},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "Intervalo acima do máximo - erro de intervalo grande",
			start:   time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			end:     jan(1),
			setup:   func() {},
			wantErr: ErrRangeTooLarge,
		},
		{
			name:    "Data ausente - erro de entrada",
			start:   time.Time{},
			end:     jan(1),
			setup:   func() {},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.Fetch(context.Background(), tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_RangeErrorsCarryAPICode(t *testing.T) {
	service := NewService(nil, nil, nil, nil, testConfig())

	_, err := service.FetchRange(context.Background(), jan(3), jan(1))

	var reportErr *ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, apiErrors.ErrInvalidRequest, reportErr.Code)

	_, err = service.FetchRange(context.Background(), time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), jan(1))
	require.ErrorAs(t, err, &reportErr)
	assert.ErrorIs(t, err, ErrInvalidRange, "intervalo grande também é intervalo inválido")
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockSalesDataRepository(ctrl)
	service := NewService(mockRepo, NewGenerator(testGeneratorParams(1)), nil, nil, testConfig())

	mockRepo.EXPECT().
		GetByDateRange(gomock.Any(), jan(1), jan(2)).
		Return(storedRecords(1, 2), nil)

	summary, err := service.Summarize(context.Background(), jan(1), jan(2))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Days)
	assert.Equal(t, "3000", summary.TotalSales.String())
	assert.Equal(t, 30, summary.TotalCustomers)
	require.NotNil(t, summary.Changes.Sales)
	assert.Equal(t, 100.0, *summary.Changes.Sales)
}

func TestService_Backfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockSalesDataRepository(ctrl)
	service := NewService(mockRepo, NewGenerator(testGeneratorParams(1)), nil, nil, testConfig())

	t.Run("Insere apenas as datas ausentes", func(t *testing.T) {
		mockRepo.EXPECT().
			ExistingDates(gomock.Any(), jan(1), jan(5)).
			Return(map[string]struct{}{"2024-01-02": {}, "2024-01-04": {}}, nil)

		mockRepo.EXPECT().
			InsertIgnoringConflicts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*domain.DailyMetric) (int, error) {
				require.Len(t, records, 3)
				assert.Equal(t, jan(1), records[0].Date)
				assert.Equal(t, jan(3), records[1].Date)
				assert.Equal(t, jan(5), records[2].Date)
				return len(records), nil
			})

		result, err := service.Backfill(context.Background(), jan(1), jan(5))
		require.NoError(t, err)
		assert.Equal(t, 5, result.Requested)
		assert.Equal(t, 2, result.Existing)
		assert.Equal(t, 3, result.Inserted)
	})

	t.Run("Intervalo completo - nada a inserir", func(t *testing.T) {
		mockRepo.EXPECT().
			ExistingDates(gomock.Any(), jan(1), jan(2)).
			Return(map[string]struct{}{"2024-01-01": {}, "2024-01-02": {}}, nil)

		result, err := service.Backfill(context.Background(), jan(1), jan(2))
		require.NoError(t, err)
		assert.Zero(t, result.Inserted)
	})

	t.Run("Falha no banco - erro interno", func(t *testing.T) {
		mockRepo.EXPECT().
			ExistingDates(gomock.Any(), jan(1), jan(2)).
			Return(nil, errors.New("timeout"))

		_, err := service.Backfill(context.Background(), jan(1), jan(2))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
