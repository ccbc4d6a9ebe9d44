package deliverylog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS deliveries (
	id          BIGSERIAL PRIMARY KEY,
	message_id  TEXT NOT NULL,
	recipient   TEXT NOT NULL,
	order_id    TEXT NOT NULL,
	status      TEXT NOT NULL,
	detail      TEXT NOT NULL DEFAULT '',
	sent_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS deliveries_order_id_idx ON deliveries (order_id);
CREATE INDEX IF NOT EXISTS deliveries_sent_at_idx  ON deliveries (sent_at DESC);
`

// PostgresLog persists delivery records to a PostgreSQL database.
// It implements the Log interface.
type PostgresLog struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresLog creates a PostgresLog backed by the given connection pool
// and ensures the deliveries table exists.
func NewPostgresLog(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) (*PostgresLog, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure deliveries schema: %w", err)
	}
	logger.Debug("deliveries schema ready")
	return &PostgresLog{pool: pool, logger: logger}, nil
}

// Append implements Log.
func (l *PostgresLog) Append(ctx context.Context, e Entry) (*Entry, error) {
	row := l.pool.QueryRow(ctx, `
		INSERT INTO deliveries (message_id, recipient, order_id, status, detail)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sent_at`,
		e.MessageID, e.Recipient, e.OrderID, e.Status, e.Detail,
	)
	if err := row.Scan(&e.ID, &e.SentAt); err != nil {
		return nil, fmt.Errorf("insert delivery: %w", err)
	}
	return &e, nil
}

// Recent implements Log.
func (l *PostgresLog) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.pool.Query(ctx, `
		SELECT id, message_id, recipient, order_id, status, detail, sent_at
		FROM deliveries
		ORDER BY id DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query deliveries: %w", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.MessageID, &e.Recipient, &e.OrderID, &e.Status, &e.Detail, &e.SentAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Count implements Log.
func (l *PostgresLog) Count(ctx context.Context) (map[string]int64, error) {
	rows, err := l.pool.Query(ctx, `SELECT status, count(*) FROM deliveries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count deliveries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
