package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

type Middleware = func(ctx huma.Context, next func(huma.Context))

// Container хранит общие мидлвари, которые получают все обработчики
type Container struct {
	huma.Middlewares
}

// NewContainer создает контейнер с базовым набором мидлварей
func NewContainer(base ...Middleware) *Container {
	mws := make(huma.Middlewares, 0, len(base))
	mws = append(mws, base...)
	return &Container{
		Middlewares: mws,
	}
}

// Add добавляет мидлвари в конец общего списка
func (mc *Container) Add(mws ...Middleware) {
	mc.Middlewares = append(mc.Middlewares, mws...)
}

// With возвращает копию общего списка с дополнительными мидлварями.
// Сам контейнер не меняется.
func (mc *Container) With(extra ...Middleware) huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.Middlewares)+len(extra))
	result = append(result, mc.Middlewares...)
	return append(result, extra...)
}
