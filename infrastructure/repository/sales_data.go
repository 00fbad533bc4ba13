package repository

//go:generate mockgen -source=sales_data.go -destination=mocks/mock_sales_data.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesDataTable = "sales_data"
	// limita os parâmetros por INSERT abaixo do teto do sqlite
	insertBatchSize = 500
)

type SalesDataRepository interface {
	GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyMetric, error)
	ExistingDates(ctx context.Context, startDate, endDate time.Time) (map[string]struct{}, error)
	InsertIgnoringConflicts(ctx context.Context, records []*domain.DailyMetric) (int, error)
}

type salesDataRepository struct {
	conn database.Conn
}

func NewSalesDataRepository(conn database.Conn) SalesDataRepository {
	return &salesDataRepository{
		conn: conn,
	}
}

func (r *salesDataRepository) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(r.conn.Placeholder())
}

// GetByDateRange devolve os registros com date entre as duas datas (inclusive), em ordem crescente
func (r *salesDataRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DailyMetric, error) {
	query, args, err := r.builder().
		Select("date", "sales", "customers", "conversion_rate").
		From(salesDataTable).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar sales_data")
	}
	defer rows.Close()

	records := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		record, err := r.deserializeDailyMetric(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao percorrer sales_data")
	}

	return records, nil
}

func (r *salesDataRepository) deserializeDailyMetric(rows *sql.Rows) (*domain.DailyMetric, error) {
	var (
		date       dateScanner
		sales      decimal.Decimal
		conversion decimal.Decimal
		record     = &domain.DailyMetric{}
	)

	if err := rows.Scan(&date, &sales, &record.Customers, &conversion); err != nil {
		return nil, errors.Wrap(err, "erro ao ler registro de sales_data")
	}

	record.Date = date.Time
	record.Sales = sales.Round(2)
	record.ConversionRate = conversion.Round(4).InexactFloat64()

	return record, nil
}

// ExistingDates devolve as datas (YYYY-MM-DD) já persistidas no intervalo
func (r *salesDataRepository) ExistingDates(ctx context.Context, startDate, endDate time.Time) (map[string]struct{}, error) {
	query, args, err := r.builder().
		Select("date").
		From(salesDataTable).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar datas existentes")
	}
	defer rows.Close()

	dates := make(map[string]struct{})
	for rows.Next() {
		var date dateScanner
		if err := rows.Scan(&date); err != nil {
			return nil, errors.Wrap(err, "erro ao ler data existente")
		}
		dates[date.Time.Format(time.DateOnly)] = struct{}{}
	}

	return dates, rows.Err()
}

// InsertIgnoringConflicts insere os registros numa transação, ignorando datas já existentes.
// Retorna quantas linhas foram de fato inseridas.
func (r *salesDataRepository) InsertIgnoringConflicts(ctx context.Context, records []*domain.DailyMetric) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var inserted int64
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			insertSQL, args, err := r.insertQuery(records[start:end])
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, insertSQL, args...)
			if err != nil {
				return errors.Wrap(err, "erro ao inserir sales_data")
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			inserted += affected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(inserted), nil
}

func (r *salesDataRepository) insertQuery(records []*domain.DailyMetric) (string, []interface{}, error) {
	query := r.builder().
		Insert(salesDataTable).
		Columns("date", "sales", "customers", "conversion_rate")

	for _, record := range records {
		query = query.Values(
			record.Date.Format(time.DateOnly),
			record.Sales.StringFixed(2),
			record.Customers,
			record.ConversionRate,
		)
	}

	return query.Suffix("ON CONFLICT (date) DO NOTHING").ToSql()
}

// dateScanner aceita as representações de DATE dos drivers suportados:
// time.Time no postgres, string ou []byte no sqlite.
type dateScanner struct {
	time.Time
}

func (d *dateScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("tipo de data não suportado: %T", src)
	}
}

func (d *dateScanner) parse(s string) error {
	if len(s) < len(time.DateOnly) {
		return fmt.Errorf("data inválida: %q", s)
	}

	t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}
