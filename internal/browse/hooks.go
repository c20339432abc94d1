package browse

import (
	"context"

	"AdminBrowseAPI/internal/resource"

	"github.com/Masterminds/squirrel"
)

// HookResult — результат кастомизации запроса ресурсом: подменённый
// запрос, опционально другие опции исполнения и/или post-fetch
// преобразование записей. Собирается конструкторами Plain / WithOptions /
// WithPostProcess.
type HookResult struct {
	Query      squirrel.SelectBuilder
	Options    *ExecOptions
	AfterFetch func(map[string]any) map[string]any
}

func Plain(q squirrel.SelectBuilder) HookResult {
	return HookResult{Query: q}
}

func WithOptions(q squirrel.SelectBuilder, opts ExecOptions) HookResult {
	return HookResult{Query: q, Options: &opts}
}

func WithPostProcess(q squirrel.SelectBuilder, fn func(map[string]any) map[string]any) HookResult {
	return HookResult{Query: q, AfterFetch: fn}
}

// IndexHook кастомизирует списочный запрос ресурса перед исполнением.
type IndexHook func(ctx context.Context, res *resource.Resource, q squirrel.SelectBuilder) HookResult

// ShowHook кастомизирует запрос одиночной записи.
type ShowHook func(ctx context.Context, res *resource.Resource, q squirrel.SelectBuilder) HookResult

// Хуки регистрируются на старте процесса, до обслуживания запросов.
var (
	indexHooks = map[string]IndexHook{}
	showHooks  = map[string]ShowHook{}
)

func RegisterIndexHook(resourceName string, h IndexHook) {
	indexHooks[resourceName] = h
}

func RegisterShowHook(resourceName string, h ShowHook) {
	showHooks[resourceName] = h
}
