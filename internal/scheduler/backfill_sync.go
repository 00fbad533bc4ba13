package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const backfillTimeout = 5 * time.Minute

// BackfillSyncConfig representa a configuração do agendador de backfill
type BackfillSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// BackfillSyncService mantém os últimos dias preenchidos no banco
type BackfillSyncService struct {
	scheduler           *gocron.Scheduler
	config              BackfillSyncConfig
	backfiller          reporting.Backfiller
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.BackfillResult
	lastError           string
}

// NewBackfillSyncService cria uma nova instância do serviço de backfill agendado
func NewBackfillSyncService(
	backfiller reporting.Backfiller,
	appConfig *config.Config,
) *BackfillSyncService {
	syncConfig := BackfillSyncConfig{
		CronSchedule: appConfig.BackfillSync.CronSchedule,
		LookbackDays: max(appConfig.BackfillSync.LookbackDays, 1),
		SyncEnabled:  appConfig.BackfillSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de backfill carregada")

	return &BackfillSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		backfiller: backfiller,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *BackfillSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Backfill agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backfill")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBackfill(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backfill: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backfill")
		s.scheduler.Stop()
	}()

	return nil
}

// window devolve o intervalo [hoje - lookback, ontem]
func (s *BackfillSyncService) window() (time.Time, time.Time) {
	yesterday := utils.DateOnly(s.now()).AddDate(0, 0, -1)
	return yesterday.AddDate(0, 0, -(s.config.LookbackDays - 1)), yesterday
}

// tryStart marca a execução como iniciada; falso se já houver uma em andamento
func (s *BackfillSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *BackfillSyncService) runBackfill(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Backfill já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

func (s *BackfillSyncService) execute(ctx context.Context) {
	startTime := s.now()

	ctx, cancel := context.WithTimeout(ctx, backfillTimeout)
	defer cancel()

	start, end := s.window()
	result, err := s.backfiller.Backfill(ctx, start, end)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).WithFields(logrus.Fields{
			"start_date": start.Format(time.DateOnly),
			"end_date":   end.Format(time.DateOnly),
		}).Error("Erro ao executar backfill agendado")
		return
	}

	s.lastError = ""
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
		"inserted":   result.Inserted,
		"existing":   result.Existing,
	}).Info("Backfill agendado concluído")
}

// TriggerManualSync inicia manualmente um backfill; falso se já houver um em andamento
func (s *BackfillSyncService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Backfill já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando backfill manual")
	go s.execute(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *BackfillSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}
