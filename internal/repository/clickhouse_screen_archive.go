package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"FinScreen/internal/domain/models"
	domrepo "FinScreen/internal/domain/repository"
	applogger "FinScreen/pkg/logger"
)

const archiveChunkSize = 2000

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CHScreenArchive implements ScreenArchive backed by a ClickHouse table.
type CHScreenArchive struct {
	db    execer
	table string
	l     *applogger.Logger
}

func NewCHScreenArchive(db *sql.DB, table string, l *applogger.Logger) *CHScreenArchive {
	return &CHScreenArchive{db: db, table: table, l: l}
}

// SchemaStatements returns the DDL for the outcome table.
func SchemaStatements(table string) []string {
	return []string{fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            evaluated_at DateTime64(3),
            screen       LowCardinality(String),
            ticker       String,
            cache_index  UInt32,
            passed       UInt8,
            failed_step  UInt8,
            step_name    LowCardinality(String),
            reason       String
        )
        ENGINE = MergeTree
        ORDER BY (screen, ticker, evaluated_at)
    `, table)}
}

func (s *CHScreenArchive) Init(ctx context.Context) error {
	for _, stmt := range SchemaStatements(s.table) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init screen archive: %w", err)
		}
	}
	return nil
}

// StoreOutcomes inserts outcomes in multi-row chunks.
func (s *CHScreenArchive) StoreOutcomes(ctx context.Context, outcomes []models.ScreenOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	start := time.Now()
	for lo := 0; lo < len(outcomes); lo += archiveChunkSize {
		hi := lo + archiveChunkSize
		if hi > len(outcomes) {
			hi = len(outcomes)
		}
		q, args := insertStatement(s.table, outcomes[lo:hi])
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			s.l.Error("clickhouse store_outcomes error",
				applogger.String("table", s.table),
				applogger.Int("rows", hi-lo),
				applogger.Error(err),
			)
			return fmt.Errorf("store outcomes: %w", err)
		}
	}
	s.l.Info("clickhouse store_outcomes ok",
		applogger.String("table", s.table),
		applogger.Int("rows", len(outcomes)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return nil
}

func insertStatement(table string, outcomes []models.ScreenOutcome) (string, []any) {
	values := make([]string, 0, len(outcomes))
	args := make([]any, 0, len(outcomes)*8)
	for _, o := range outcomes {
		values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?)")
		passed := uint8(0)
		if o.Passed {
			passed = 1
		}
		args = append(args,
			o.EvaluatedAt,
			o.Screen,
			o.Ticker,
			uint32(o.CacheIndex),
			passed,
			uint8(o.FailedStep),
			o.StepName,
			o.Reason,
		)
	}
	q := fmt.Sprintf("INSERT INTO %s (evaluated_at, screen, ticker, cache_index, passed, failed_step, step_name, reason) VALUES %s",
		table, strings.Join(values, ","))
	return q, args
}

// Close is a no-op; the pool is owned by the ClickHouse client.
func (s *CHScreenArchive) Close() error { return nil }

var _ domrepo.ScreenArchive = (*CHScreenArchive)(nil)
