package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"badminton-club/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS items (
	pk     TEXT  NOT NULL,
	sk     TEXT  NOT NULL,
	gsi1pk TEXT,
	gsi1sk TEXT,
	gsi2pk TEXT,
	gsi2sk TEXT,
	data   JSONB NOT NULL,
	PRIMARY KEY (pk, sk)
);
CREATE INDEX IF NOT EXISTS items_gsi1 ON items (gsi1pk, gsi1sk text_pattern_ops);
CREATE INDEX IF NOT EXISTS items_gsi2 ON items (gsi2pk, gsi2sk text_pattern_ops);
`

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return errs.Wrap(err, "failed to create items table")
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, pk, sk string, out any) error {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM items WHERE pk = $1 AND sk = $2`, pk, sk).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return errs.Wrapf(err, "get %s/%s", pk, sk)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errs.Wrapf(err, "decode %s/%s", pk, sk)
	}
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, op PutOp) error {
	return s.put(ctx, s.pool, op)
}

func (s *PostgresStore) Update(ctx context.Context, pk, sk string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return errs.Wrap(err, "encode update fields")
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE items SET data = data || $3::jsonb WHERE pk = $1 AND sk = $2`,
		pk, sk, string(patch),
	)
	if err != nil {
		return errs.Wrapf(err, "update %s/%s", pk, sk)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Query(ctx context.Context, pk, skPrefix string, out any) error {
	return s.QueryIndex(ctx, IndexPrimary, pk, skPrefix, out)
}

func (s *PostgresStore) QueryIndex(ctx context.Context, index Index, pk, skPrefix string, out any) error {
	pkCol, skCol, err := indexColumns(index)
	if err != nil {
		return err
	}
	sql := fmt.Sprintf(
		`SELECT data FROM items WHERE %s = $1 AND %s LIKE $2 ESCAPE '\' ORDER BY %s`,
		pkCol, skCol, skCol,
	)
	return s.collect(ctx, out, sql, pk, likePrefix(skPrefix))
}

func (s *PostgresStore) Scan(ctx context.Context, filter map[string]string, out any) error {
	f, err := json.Marshal(filter)
	if err != nil {
		return errs.Wrap(err, "encode scan filter")
	}
	return s.collect(ctx, out, `SELECT data FROM items WHERE data @> $1::jsonb ORDER BY pk, sk`, string(f))
}

func (s *PostgresStore) TransactWrite(ctx context.Context, ops ...PutOp) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "begin transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			s.logger.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	for _, op := range ops {
		if err := s.put(ctx, tx, op); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "commit transaction")
	}
	return nil
}

func (s *PostgresStore) put(ctx context.Context, db execer, op PutOp) error {
	keys := op.Item.ItemKeys()
	data, err := json.Marshal(op.Item)
	if err != nil {
		return errs.Wrapf(err, "encode %s/%s", keys.PK, keys.SK)
	}
	args := []any{
		keys.PK, keys.SK,
		nullIfEmpty(keys.GSI1PK), nullIfEmpty(keys.GSI1SK),
		nullIfEmpty(keys.GSI2PK), nullIfEmpty(keys.GSI2SK),
		string(data),
	}

	var sql string
	switch op.Condition.kind {
	case conditionNone:
		sql = `INSERT INTO items (pk, sk, gsi1pk, gsi1sk, gsi2pk, gsi2sk, data)
			VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
			ON CONFLICT (pk, sk) DO UPDATE SET
				gsi1pk = EXCLUDED.gsi1pk, gsi1sk = EXCLUDED.gsi1sk,
				gsi2pk = EXCLUDED.gsi2pk, gsi2sk = EXCLUDED.gsi2sk,
				data = EXCLUDED.data`
	case conditionNotExists:
		sql = `INSERT INTO items (pk, sk, gsi1pk, gsi1sk, gsi2pk, gsi2sk, data)
			VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
			ON CONFLICT (pk, sk) DO NOTHING`
	case conditionVersion:
		sql = `UPDATE items SET
				gsi1pk = $3, gsi1sk = $4, gsi2pk = $5, gsi2sk = $6, data = $7::jsonb
			WHERE pk = $1 AND sk = $2 AND (data->>'` + VersionAttribute + `')::bigint = $8`
		args = append(args, op.Condition.version)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return errs.Wrapf(err, "put %s/%s", keys.PK, keys.SK)
	}
	if op.Condition.kind != conditionNone && tag.RowsAffected() == 0 {
		return ErrConditionFailed
	}
	return nil
}

func (s *PostgresStore) collect(ctx context.Context, out any, sql string, args ...any) error {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return errs.Wrap(err, "query items")
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return errs.Wrap(err, "read items")
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.Write(bytes.Join(docs, []byte{','}))
	buf.WriteByte(']')
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return errs.Wrap(err, "decode items")
	}
	return nil
}

func indexColumns(index Index) (string, string, error) {
	switch index {
	case IndexPrimary:
		return "pk", "sk", nil
	case IndexGSI1:
		return "gsi1pk", "gsi1sk", nil
	case IndexGSI2:
		return "gsi2pk", "gsi2sk", nil
	default:
		return "", "", fmt.Errorf("unknown index %q", index)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
