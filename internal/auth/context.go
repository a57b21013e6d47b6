package auth

import "context"

type ctxKey struct{}

// Into кладёт Store запроса в контекст.
func Into(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext возвращает Store запроса или nil.
func FromContext(ctx context.Context) *Store {
	s, _ := ctx.Value(ctxKey{}).(*Store)
	return s
}
