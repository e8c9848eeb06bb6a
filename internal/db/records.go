package reconcile

import (
	"context"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RecordsDB - bank transaction rows written by the console scraper.
// Columns are kept as scraped text, normalization happens in the reconcile service.
type RecordsDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewRecordsDB(logger *zap.Logger) (db *RecordsDB, err error) {
	// config
	purl := os.Getenv("RECONCILE_DB")
	if purl == "" {
		return nil, fmt.Errorf("env RECONCILE_DB is not set")
	}
	port := os.Getenv("RECONCILE_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env RECONCILE_DB_PORT is not set")
	}
	user := os.Getenv("RECONCILE_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env RECONCILE_DB_USER is not set")
	}
	password := os.Getenv("RECONCILE_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env RECONCILE_DB_PASSWORD is not set")
	}
	database := os.Getenv("RECONCILE_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env RECONCILE_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &RecordsDB{pool, logger}, nil
}

func (r *RecordsDB) Close() {
	r.pool.Close()
}

// GetRecords returns rows whose timestamp date lies in [from, to], in scrape order
func (r *RecordsDB) GetRecords(ctx context.Context, from time.Time, to time.Time) ([]models.RawRecord, error) {
	sql, args, err := recordsQuery(from, to)
	if err != nil {
		r.logger.Error("SQL error", zap.Error(err), zap.String("query", sql), zap.Any("args", args))
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.logger.Error("SQL error", zap.Error(err), zap.String("query", sql), zap.Any("args", args))
		return nil, err
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var rec models.RawRecord
		err := rows.Scan(&rec.OrderID, &rec.PlayerKey, &rec.Gateway, &rec.Amount, &rec.Timestamp, &rec.Kind)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// the text timestamp layout sorts like the time itself, so the range is a string comparison
func recordsQuery(from time.Time, to time.Time) (string, []any, error) {
	return sq.Select("order_id", "phone_number", "gateway", "amount", "txn_time", "txn_type").
		From("bank_transactions").
		Where(sq.GtOrEq{"txn_time": from.Format(models.DateLayout) + " 00:00:00"}).
		Where(sq.LtOrEq{"txn_time": to.Format(models.DateLayout) + " 23:59:59"}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
