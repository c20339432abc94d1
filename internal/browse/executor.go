package browse

import (
	"context"

	"AdminBrowseAPI/internal/logger"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExecOptions — опции исполнения запроса; хуки ресурсов могут их менять.
type ExecOptions struct {
	// UseReplica направляет чтение в read-replica, если она настроена.
	UseReplica bool
}

// Executor исполняет собранные запросы против стораджа.
type Executor interface {
	ExecuteAll(ctx context.Context, q squirrel.SelectBuilder, opts ExecOptions) ([]map[string]any, error)
	ExecuteOne(ctx context.Context, q squirrel.SelectBuilder, opts ExecOptions) (map[string]any, error)
	ExecuteCount(ctx context.Context, q squirrel.SelectBuilder, opts ExecOptions) (int64, error)
}

// PgxExecutor — исполнение через pgx-пулы; Replica может быть nil,
// тогда всё чтение идёт в Primary.
type PgxExecutor struct {
	Primary *pgxpool.Pool
	Replica *pgxpool.Pool
}

func (e *PgxExecutor) pool(opts ExecOptions) *pgxpool.Pool {
	if opts.UseReplica && e.Replica != nil {
		return e.Replica
	}
	return e.Primary
}

func (e *PgxExecutor) ExecuteAll(ctx context.Context, q squirrel.SelectBuilder, opts ExecOptions) ([]map[string]any, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	logger.Debug("sql", map[string]any{
		"sql":  sqlStr,
		"args": args,
	})

	rows, err := e.pool(opts).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

func (e *PgxExecutor) ExecuteOne(ctx context.Context, q squirrel.SelectBuilder, opts ExecOptions) (map[string]any, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	logger.Debug("sql", map[string]any{
		"sql":  sqlStr,
		"args": args,
	})

	rows, err := e.pool(opts).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// отсутствие строки — нормальный исход, не ошибка
		return nil, nil
	}
	return items[0], nil
}

func (e *PgxExecutor) ExecuteCount(ctx context.Context, q squirrel.SelectBuilder, opts ExecOptions) (int64, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := e.pool(opts).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// scanRows превращает результат в []map[string]any: ключи — имена колонок
// из описания результата.
func scanRows(rows pgx.Rows) ([]map[string]any, error) {
	descs := rows.FieldDescriptions()
	keys := make([]string, len(descs))
	for i, d := range descs {
		keys[i] = string(d.Name)
	}

	out := make([]map[string]any, 0, 16)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		n := len(vals)
		if len(keys) < n {
			n = len(keys)
		}
		row := make(map[string]any, n)
		for i := 0; i < n; i++ {
			row[keys[i]] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
