package query

import (
	"fmt"
	"strings"

	"AdminBrowseAPI/internal/resource"

	"github.com/Masterminds/squirrel"
)

// QueryPair — два запроса над одним отфильтрованным набором строк:
// Count считает его целиком, Page добавляет только сортировку и
// limit/offset, так что до пагинации наборы совпадают.
type QueryPair struct {
	Count squirrel.SelectBuilder
	Page  squirrel.SelectBuilder
}

// BuildBrowseQuery строит пару запросов для списочной выборки ресурса:
// базовый FROM, OR-поиск по выжившим полям/ассоциациям, AND-фильтры,
// затем колонки/сортировка/пагинация для страничной формы.
func BuildBrowseQuery(
	res *resource.Resource,
	term string,
	termType TermType,
	sel SearchSelection,
	filters []Filter,
	ordering resource.Ordering,
	page, perPage uint64,
) (QueryPair, error) {

	base := squirrel.SelectBuilder{}.PlaceholderFormat(squirrel.Dollar)

	// 1. FROM
	base = base.From(fmt.Sprintf("%s AS main", res.Table))

	// 2. OR-поиск: пропускаем целиком, если искать нечего или нечем
	hasToMany := false
	if term != "" && !sel.Empty() {
		termVal := termType.Value(term)
		conds := make([]squirrel.Sqlizer, 0, len(sel.Fields))
		for _, f := range sel.Fields {
			conds = append(conds, squirrel.Eq{"main." + f: termVal})
		}
		// JOIN один на ассоциацию; по совпадающим таблицам разных
		// ассоциаций не дедуплицируем
		for i, as := range sel.Associations {
			alias := fmt.Sprintf("s%d", i)
			base = base.LeftJoin(fmt.Sprintf("%s AS %s ON %s", as.Assoc.Table, alias, joinOn(as.Assoc, alias)))
			if as.Assoc.Type == "has_many" {
				hasToMany = true
			}
			for _, f := range as.Fields {
				conds = append(conds, squirrel.Eq{alias + "." + f: termVal})
			}
		}
		base = base.Where(squirrel.Or(conds))
	}

	// 3. AND-фильтры поверх поиска
	for _, f := range filters {
		val, err := resource.CoerceValue(f.Type, f.Value)
		if err != nil {
			// нечитаемое значение для типизированной колонки —
			// отдаём строку, сторадж решит
			val = f.Value
		}
		base = base.Where(squirrel.Eq{"main." + f.Name: val})
	}

	// 4. Счётная форма: JOIN по has_many размножает строки,
	// считаем DISTINCT по первичному ключу
	pair := QueryPair{}
	if hasToMany {
		pks := res.GetPrimaryKeys()
		if len(pks) == 0 {
			return pair, fmt.Errorf("count over to-many search join: %w", resource.ErrNoPrimaryKey)
		}
		qualified := make([]string, len(pks))
		for i, pk := range pks {
			qualified[i] = "main." + pk
		}
		if len(qualified) == 1 {
			pair.Count = base.Column(fmt.Sprintf("COUNT(DISTINCT %s)", qualified[0]))
		} else {
			pair.Count = base.Column(fmt.Sprintf("COUNT(DISTINCT (%s))", strings.Join(qualified, ", ")))
		}
	} else {
		pair.Count = base.Column("COUNT(*)")
	}

	// 5. Страничная форма: колонки, ORDER BY, LIMIT/OFFSET
	pageQ := base.Columns("main.*")
	for _, ord := range ordering {
		pageQ = pageQ.OrderBy(fmt.Sprintf("main.%s %s", ord.Field, strings.ToUpper(ord.Direction)))
	}
	if perPage > 0 {
		if page == 0 {
			page = 1
		}
		pageQ = pageQ.Limit(perPage)
		pageQ = pageQ.Offset((page - 1) * perPage)
	}
	pair.Page = pageQ

	return pair, nil
}

// joinOn строит ON-условие по типу ассоциации: у belongs_to внешний ключ
// в текущем ресурсе, у has_one/has_many — в связанном.
func joinOn(a *resource.Association, alias string) string {
	if a.Type == "belongs_to" {
		return fmt.Sprintf("main.%s = %s.%s", a.FK, alias, a.PK)
	}
	return fmt.Sprintf("%s.%s = main.%s", alias, a.FK, a.PK)
}
