// Package ch provides a clickhouse client used as an analytics mirror
package ch

import (
	"context"
	"fmt"
	"strings"

	"flagwatch/internal/platform/logger"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the clickhouse client
type Config struct {
	URL        string
	AppName    string
	ClientName string
	ClientTag  string
}

// Option mutates CH during Open
type Option func(*CH)

// WithLogger sets the logger used for insert failures and slow pings
func WithLogger(log logger.Logger) Option {
	return func(c *CH) { c.log = log.With().Str("component", "ch").Logger() }
}

// CH wraps a native clickhouse connection
type CH struct {
	conn driver.Conn
	log  logger.Logger
}

// Open parses the DSN and dials clickhouse
func Open(ctx context.Context, cfg Config, opts ...Option) (*CH, error) {
	o, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	role := cfg.ClientName
	if role == "" {
		role = cfg.AppName
	}
	o.ClientInfo = BuildClientInfo(role, cfg.ClientTag)

	conn, err := clickhouse.Open(o)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ch: ping: %w", err)
	}

	c := &CH{conn: conn}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Insert writes one row asynchronously
// the server acknowledges receipt without waiting for the flush
func (c *CH) Insert(ctx context.Context, table string, columns []string, values ...any) error {
	if c == nil || c.conn == nil {
		return fmt.Errorf("ch: nil client")
	}
	if len(columns) != len(values) {
		return fmt.Errorf("ch: insert %s: %d columns but %d values", table, len(columns), len(values))
	}
	q := insertSQL(table, columns)
	if err := c.conn.AsyncInsert(ctx, q, false, values...); err != nil {
		return fmt.Errorf("ch: insert %s: %w", table, err)
	}
	c.log.Debug().Str("table", table).Int("columns", len(columns)).Msg("ch async insert")
	return nil
}

// Ping verifies the connection is alive
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return fmt.Errorf("ch: nil client")
	}
	return c.conn.Ping(ctx)
}

// Close closes the underlying connection
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func insertSQL(table string, columns []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES (")
	for i := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteString(")")
	return b.String()
}
