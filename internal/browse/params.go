package browse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 100
)

// ErrMalformedParam — page/per_page присутствуют, но не разбираются в
// положительное целое. Отсутствующий ключ получает default, кривое
// значение — ошибку сразу.
var ErrMalformedParam = errors.New("malformed parameter")

type pageRequest struct {
	Page    uint64
	PerPage uint64
	Term    string
}

func parsePageRequest(params map[string]string) (pageRequest, error) {
	page, err := parsePositiveParam(params, "page", DefaultPage)
	if err != nil {
		return pageRequest{}, err
	}
	perPage, err := parsePositiveParam(params, "per_page", DefaultPerPage)
	if err != nil {
		return pageRequest{}, err
	}
	return pageRequest{
		Page:    page,
		PerPage: perPage,
		Term:    strings.TrimSpace(params["search"]),
	}, nil
}

func parsePositiveParam(params map[string]string, key string, fallback uint64) (uint64, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedParam, key, raw)
	}
	return n, nil
}
