package query

import (
	"fmt"

	"AdminBrowseAPI/internal/resource"
)

// Filter — активное равенство по полю, полученное из параметров запроса.
type Filter struct {
	Name  string
	Value string
	Type  string // семантический тип поля из дескриптора
}

// Параметры, зарезервированные под пагинацию/поиск/сортировку;
// фильтрами не становятся даже при совпадении с именем поля.
var reservedParams = map[string]bool{
	"page":      true,
	"per_page":  true,
	"search":    true,
	"order":     true,
	"direction": true,
}

// ResolveFilters отбирает из параметров запроса пары, чей ключ — известное
// поле ресурса, а значение непустое. Неизвестные ключи молча игнорируются:
// так из фильтров выпадает прочий шум query string. Порядок результата —
// порядок объявления полей ресурса.
func ResolveFilters(params map[string]string, res *resource.Resource) ([]Filter, error) {
	var out []Filter
	for _, f := range res.Fields {
		if reservedParams[f.Name] {
			continue
		}
		raw, ok := params[f.Name]
		if !ok || raw == "" {
			continue
		}
		semType, ok := res.GetFieldType(f.Name)
		if !ok {
			// не должно случаться: поле взято из дескриптора
			return nil, fmt.Errorf("%w: filter field '%s'", resource.ErrUnknownField, f.Name)
		}
		out = append(out, Filter{Name: f.Name, Value: raw, Type: semType})
	}
	return out, nil
}
