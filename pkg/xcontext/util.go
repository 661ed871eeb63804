package xcontext

import "context"

type (
	requestUserIDKey struct{}
	requestAPIKeyKey struct{}
	responseKey      struct{}
	errorKey         struct{}
)

func WithRequestUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, id)
}

// RequestUserID returns the user id resolved from the Api-Key header, or zero
// if the request is not authenticated.
func RequestUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(requestUserIDKey{}).(int64); ok {
		return id
	}
	return 0
}

func WithRequestAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, requestAPIKeyKey{}, key)
}

func RequestAPIKey(ctx context.Context) string {
	if key, ok := ctx.Value(requestAPIKeyKey{}).(string); ok {
		return key
	}
	return ""
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	if err, ok := ctx.Value(errorKey{}).(error); ok {
		return err
	}
	return nil
}

func WithResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

func Response(ctx context.Context) any {
	return ctx.Value(responseKey{})
}
