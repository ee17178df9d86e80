package guard

import "context"

type prerenderKey struct{}

// WithPrerender marks ctx as a pre-render pass, where no client cache
// exists.
func WithPrerender(ctx context.Context) context.Context {
	return context.WithValue(ctx, prerenderKey{}, true)
}

// IsClient reports whether ctx belongs to an interactive client rather than
// a pre-render pass.
func IsClient(ctx context.Context) bool {
	prerender, _ := ctx.Value(prerenderKey{}).(bool)
	return !prerender
}
