package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(backfiller *mocks.MockBackfiller, lookback int) *BackfillSyncService {
	service := NewBackfillSyncService(backfiller, &config.Config{
		BackfillSync: config.BackfillSync{
			CronSchedule: "0 2 * * *",
			LookbackDays: lookback,
		},
	})
	// Data de referência: 16 de janeiro, 10h
	service.now = func() time.Time { return time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC) }
	return service
}

func TestBackfillSyncService_Window(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockBackfiller(ctrl), 7)

	start, end := service.window()
	assert.Equal(t, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), end)

	// lookback inválido vira um dia: apenas ontem
	service = newTestService(mocks.NewMockBackfiller(ctrl), 0)
	start, end = service.window()
	assert.Equal(t, end, start)
}

func TestBackfillSyncService_RunBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfiller := mocks.NewMockBackfiller(ctrl)
	service := newTestService(mockBackfiller, 3)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Backfill com sucesso - guarda o resultado",
			setup: func() {
				mockBackfiller.EXPECT().
					Backfill(gomock.Any(), time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).
					Return(&domain.BackfillResult{Requested: 3, Existing: 1, Inserted: 2}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "", status["last_error"])
				result, ok := status["last_result"].(*domain.BackfillResult)
				require.True(t, ok)
				assert.Equal(t, 2, result.Inserted)
			},
		},
		{
			name: "Erro no backfill - guarda a mensagem e libera a próxima execução",
			setup: func() {
				mockBackfiller.EXPECT().
					Backfill(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database locked"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "database locked", status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.runBackfill(context.Background())
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestBackfillSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfiller := mocks.NewMockBackfiller(ctrl)
	service := newTestService(mockBackfiller, 3)

	release := make(chan struct{})
	done := make(chan struct{})

	mockBackfiller.EXPECT().
		Backfill(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, start, end time.Time) (*domain.BackfillResult, error) {
			<-release
			return &domain.BackfillResult{Requested: 3, Inserted: 3}, nil
		}).
		Times(1)

	require.True(t, service.TriggerManualSync())
	// segunda chamada enquanto a primeira está em andamento é ignorada
	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	close(release)

	go func() {
		for service.GetStatus()["sync_running"] == true {
			time.Sleep(5 * time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("backfill manual não terminou")
	}

	result, ok := service.GetStatus()["last_result"].(*domain.BackfillResult)
	require.True(t, ok)
	assert.Equal(t, 3, result.Inserted)
}

func TestBackfillSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockBackfiller(ctrl), 3)
	require.NoError(t, service.Start(context.Background()))
}

func TestBackfillSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockBackfiller(ctrl), 3)
	service.config.SyncEnabled = true
	service.config.CronSchedule = "não é cron"

	assert.Error(t, service.Start(context.Background()))
}
