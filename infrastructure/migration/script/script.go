package main

import (
	"context"
	"flag"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	defaultStartDate = "2023-06-01"
	defaultEndDate   = "2024-05-31"
)

type options struct {
	startDate   string
	endDate     string
	databaseURL string
	seed        uint64
}

func parseFlags() options {
	opts := options{}
	flag.StringVar(&opts.startDate, "start", defaultStartDate, "primeira data do histórico (YYYY-MM-DD)")
	flag.StringVar(&opts.endDate, "end", defaultEndDate, "última data do histórico (YYYY-MM-DD)")
	flag.StringVar(&opts.databaseURL, "database-url", "", "sobrescreve DATABASE_URL")
	flag.Uint64Var(&opts.seed, "seed", 0, "semente do gerador (0 usa GENERATOR_SEED)")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if opts.databaseURL != "" {
		cfg.Database.URL = opts.databaseURL
	}
	if opts.seed != 0 {
		cfg.Generator.Seed = opts.seed
	}

	start, err := utils.ParseDate(opts.startDate)
	if err != nil {
		logrus.WithError(err).Fatal("Data inicial inválida")
	}
	end, err := utils.ParseDate(opts.endDate)
	if err != nil {
		logrus.WithError(err).Fatal("Data final inválida")
	}

	// o histórico inicial pode passar do limite aplicado às consultas da API
	cfg.Report.MaxRangeDays = 0
	cfg.Database.QueryTimeout = time.Minute

	ctx := context.Background()
	startTime := time.Now()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := database.Migrate(conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	service := reporting.NewService(
		repository.NewSalesDataRepository(conn),
		reporting.NewGenerator(cfg.Generator),
		nil,
		nil,
		cfg,
	)

	result, err := service.Backfill(ctx, start, end)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular sales_data")
	}

	logrus.WithFields(logrus.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
		"requested":  result.Requested,
		"existing":   result.Existing,
		"inserted":   result.Inserted,
		"elapsed":    time.Since(startTime).String(),
	}).Info("Carga de dados concluída")

	summary, err := service.Summarize(ctx, start, end)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular o resumo")
	}
	printSummary(summary)
}

func printSummary(summary *domain.SalesSummary) {
	fields := logrus.Fields{
		"days":                summary.Days,
		"total_sales":         summary.TotalSales.StringFixed(2),
		"total_customers":     summary.TotalCustomers,
		"avg_conversion_rate": summary.AverageConversion,
	}
	if summary.Days > 0 {
		fields["avg_daily_sales"] = summary.TotalSales.Div(decimal.NewFromInt(int64(summary.Days))).StringFixed(2)
	}
	if summary.AverageOrderValue != nil {
		fields["avg_order_value"] = summary.AverageOrderValue.StringFixed(2)
	}

	logrus.WithFields(fields).Info("Resumo do período")
}
