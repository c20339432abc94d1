package resource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDPair — одно звено первичного ключа с типизированным значением.
type IDPair struct {
	Field string
	Value any
}

// DeserializeID разбирает сырой идентификатор в типизированные пары
// (поле → значение) по первичному ключу ресурса. Составной ключ
// передаётся как сегменты через запятую в порядке объявления.
func (r *Resource) DeserializeID(raw string) ([]IDPair, error) {
	pks := r.GetPrimaryKeys()
	if len(pks) == 0 {
		return nil, ErrNoPrimaryKey
	}

	var parts []string
	if len(pks) == 1 {
		parts = []string{raw}
	} else {
		parts = strings.Split(raw, ",")
	}
	if len(parts) != len(pks) {
		return nil, fmt.Errorf("%w: got %d segments, primary key has %d fields", ErrMalformedID, len(parts), len(pks))
	}

	pairs := make([]IDPair, 0, len(pks))
	for i, pk := range pks {
		semType, ok := r.GetFieldType(pk)
		if !ok {
			return nil, fmt.Errorf("%w: primary key field '%s'", ErrUnknownField, pk)
		}
		val, err := CoerceValue(semType, strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: segment '%s' for field '%s': %v", ErrMalformedID, parts[i], pk, err)
		}
		pairs = append(pairs, IDPair{Field: pk, Value: val})
	}
	return pairs, nil
}

// CoerceValue приводит сырое строковое значение к типу поля.
// Для идентификаторов (int, uuid) нечитаемое значение — ошибка;
// для остальных типов строка передаётся как есть, приведение
// оставляем стораджу.
func CoerceValue(semType, raw string) (any, error) {
	switch semType {
	case "int":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", raw)
		}
		return n, nil
	case "uuid":
		u, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("not a uuid: %q", raw)
		}
		return u, nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			// не идентификаторный тип — отдаём строку как есть
			return raw, nil
		}
		return b, nil
	default:
		return raw, nil
	}
}
