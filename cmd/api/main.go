package main

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/observability"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/tracing"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, os.Stdout)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao inicializar tracing")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracer(shutdownCtx)
		}()
	}

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	redisClient := redisconn(ctx, cfg.Cache)
	if redisClient != nil {
		defer redisClient.Close()
	}

	metrics := observability.NewMetrics()

	salesRepo := repository.NewSalesDataRepository(conn)
	generator := reporting.NewGenerator(cfg.Generator)
	rangeCache := reporting.NewRangeCache(redisClient, cfg.Cache.TTL)

	reporter := reporting.NewService(salesRepo, generator, rangeCache, metrics, cfg)

	backfillSyncService := scheduler.NewBackfillSyncService(reporter, cfg)
	if err := backfillSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backfill")
	} else {
		logrus.Info("Agendador de backfill iniciado com sucesso")
	}

	server, err := api.New(cfg, reporter, conn, metrics, backfillSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre o banco indicado em DATABASE_URL e aplica as migrações
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")

	if dbConfig.AutoMigrate {
		if err := database.Migrate(conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	return conn
}

// redisconn conecta no Redis quando REDIS_URL estiver definida; sem Redis o cache fica desligado
func redisconn(ctx context.Context, cacheConfig config.Cache) *redis.Client {
	if cacheConfig.RedisURL == "" {
		logrus.Info("REDIS_URL não definida, cache desabilitado")
		return nil
	}

	client, err := cache.New(ctx, cacheConfig.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client
}
