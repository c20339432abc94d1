package query

import (
	"strings"

	"AdminBrowseAPI/internal/resource"
)

// ResolveOrdering возвращает эффективную сортировку: валидная пара
// (override-поле, override-направление) полностью заменяет сортировку
// по умолчанию; иначе default остаётся как есть. Неизвестный токен
// направления и неизвестное поле трактуются как отсутствие override.
func ResolveOrdering(res *resource.Resource, overrideField, overrideDir string) resource.Ordering {
	field := strings.TrimSpace(overrideField)
	dir := strings.ToLower(strings.TrimSpace(overrideDir))

	if field == "" || (dir != "asc" && dir != "desc") {
		return res.Ordering
	}
	if !res.HasField(field) {
		return res.Ordering
	}
	return resource.Ordering{{Field: field, Direction: dir}}
}
