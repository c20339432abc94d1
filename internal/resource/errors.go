package resource

import "errors"

var (
	// ErrNoPrimaryKey — ресурс сконфигурирован без первичного ключа,
	// а операция его требует.
	ErrNoPrimaryKey = errors.New("resource has no primary key")

	// ErrUnknownField — имя поля не найдено в дескрипторе ресурса.
	ErrUnknownField = errors.New("unknown field")

	// ErrMalformedID — сырой идентификатор не соответствует первичному ключу ресурса.
	ErrMalformedID = errors.New("malformed id")
)
