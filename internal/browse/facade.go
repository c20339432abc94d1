package browse

import (
	"context"
	"fmt"
	"strings"

	"AdminBrowseAPI/internal/countcache"
	"AdminBrowseAPI/internal/logger"
	"AdminBrowseAPI/internal/query"
	"AdminBrowseAPI/internal/resource"

	"github.com/Masterminds/squirrel"
)

// Facade — публичные операции браузера ресурсов: список с пагинацией и
// счётчиком, одиночная запись по id, пакетная выборка по списку id.
type Facade struct {
	Exec   Executor
	Counts *countcache.Coordinator
}

func New(exec Executor, counts *countcache.Coordinator) *Facade {
	return &Facade{Exec: exec, Counts: counts}
}

// ListResource разбирает параметры, строит и исполняет списочный запрос
// и возвращает (полный count, страница записей).
func (f *Facade) ListResource(ctx context.Context, res *resource.Resource, params map[string]string) (int64, []map[string]any, error) {
	req, err := parsePageRequest(params)
	if err != nil {
		return 0, nil, err
	}

	filters, err := query.ResolveFilters(params, res)
	if err != nil {
		return 0, nil, err
	}
	ordering := query.ResolveOrdering(res, params["order"], params["direction"])

	termType := query.ClassifyTerm(req.Term)
	sel := query.SelectSearchFields(res, termType)

	pair, err := query.BuildBrowseQuery(res, req.Term, termType, sel, filters, ordering, req.Page, req.PerPage)
	if err != nil {
		return 0, nil, err
	}

	pageQ := pair.Page
	opts := ExecOptions{}
	var afterFetch func(map[string]any) map[string]any
	if hook, ok := indexHooks[res.Name]; ok {
		hr := hook(ctx, res, pageQ)
		pageQ = hr.Query
		if hr.Options != nil {
			opts = *hr.Options
		}
		afterFetch = hr.AfterFetch
	}

	records, err := f.Exec.ExecuteAll(ctx, pageQ, opts)
	if err != nil {
		logger.Error("list_fetch_failed", map[string]any{
			"resource": res.Name,
			"error":    err.Error(),
		})
		return 0, nil, err
	}
	if afterFetch != nil {
		for i, rec := range records {
			records[i] = afterFetch(rec)
		}
	}

	// Кэшируем только полный «просмотр всего»: любой суженный набор
	// считается живьём
	eligible := req.Term == "" && len(filters) == 0
	total, err := f.Counts.TotalCount(ctx, res.Name, eligible, func(ctx context.Context) (int64, error) {
		return f.Exec.ExecuteCount(ctx, pair.Count, opts)
	})
	if err != nil {
		return 0, nil, err
	}

	return total, records, nil
}

// FetchResource возвращает запись по первичному ключу или nil, если её
// нет: отсутствие — представимый исход, не ошибка.
func (f *Facade) FetchResource(ctx context.Context, res *resource.Resource, rawID string) (map[string]any, error) {
	pairs, err := res.DeserializeID(rawID)
	if err != nil {
		return nil, err
	}

	eq := squirrel.Eq{}
	for _, p := range pairs {
		eq["main."+p.Field] = p.Value
	}
	q := baseSelect(res).Columns("main.*").Where(eq)

	opts := ExecOptions{}
	var afterFetch func(map[string]any) map[string]any
	if hook, ok := showHooks[res.Name]; ok {
		hr := hook(ctx, res, q)
		q = hr.Query
		if hr.Options != nil {
			opts = *hr.Options
		}
		afterFetch = hr.AfterFetch
	}

	rec, err := f.Exec.ExecuteOne(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if afterFetch != nil {
		rec = afterFetch(rec)
	}
	return rec, nil
}

// FetchList возвращает записи по списку сырых id одним запросом, в
// естественном порядке стораджа. Пустые id-плейсхолдеры отбрасываются;
// если не осталось ни одного — пустой результат без похода в сторадж.
func (f *Facade) FetchList(ctx context.Context, res *resource.Resource, ids []string) ([]map[string]any, error) {
	pks := res.GetPrimaryKeys()
	if len(pks) == 0 {
		return nil, fmt.Errorf("fetch list for '%s': %w", res.Name, resource.ErrNoPrimaryKey)
	}

	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		clean = append(clean, id)
	}
	if len(clean) == 0 {
		return []map[string]any{}, nil
	}

	var cond squirrel.Sqlizer
	if len(pks) == 1 {
		vals := make([]any, 0, len(clean))
		for _, id := range clean {
			pairs, err := res.DeserializeID(id)
			if err != nil {
				return nil, err
			}
			vals = append(vals, pairs[0].Value)
		}
		cond = squirrel.Eq{"main." + pks[0]: vals}
	} else {
		disjuncts := make([]squirrel.Sqlizer, 0, len(clean))
		for _, id := range clean {
			pairs, err := res.DeserializeID(id)
			if err != nil {
				return nil, err
			}
			eq := squirrel.Eq{}
			for _, p := range pairs {
				eq["main."+p.Field] = p.Value
			}
			disjuncts = append(disjuncts, eq)
		}
		cond = squirrel.Or(disjuncts)
	}

	q := baseSelect(res).Columns("main.*").Where(cond)
	return f.Exec.ExecuteAll(ctx, q, ExecOptions{})
}

func baseSelect(res *resource.Resource) squirrel.SelectBuilder {
	return squirrel.SelectBuilder{}.
		PlaceholderFormat(squirrel.Dollar).
		From(fmt.Sprintf("%s AS main", res.Table))
}
