package handler

import (
	"errors"
	"net/http"

	"AdminBrowseAPI/internal/browse"
	"AdminBrowseAPI/internal/resource"
)

// Browser — фасад, через который ходят все эндпоинты; задаётся при старте.
var Browser *browse.Facade

func Init(f *browse.Facade) {
	Browser = f
}

// statusForError — маппинг ошибок ядра на HTTP-статусы.
func statusForError(err error) int {
	switch {
	case errors.Is(err, browse.ErrMalformedParam),
		errors.Is(err, resource.ErrMalformedID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
