// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyOperatorID
	keyOperatorName
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithOperatorID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, keyOperatorID, id)
}

func GetOperatorID(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(keyOperatorID).(int)
	return v, ok
}

func WithOperatorName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOperatorName, name)
}

func GetOperatorName(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyOperatorName).(string)
	return v, ok
}
