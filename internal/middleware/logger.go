package middleware

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// Logger writes one line per finished request.
func Logger(ctx context.Context) {
	httpReq := xcontext.HTTPRequest(ctx)

	apiKey := xcontext.RequestAPIKey(ctx)
	if apiKey == "" {
		apiKey = "-"
	}

	if err := xcontext.Error(ctx); err != nil {
		errx := errorx.Unknown
		errors.As(err, &errx)

		xcontext.Logger(ctx).Warnf("[%s] %s %s params=%v failed with code %s: %s",
			apiKey, httpReq.Method, httpReq.URL.String(),
			xcontext.PathParams(ctx), errx.Code, errx.Message)
		return
	}

	xcontext.Logger(ctx).Infof("[%s] %s %s succeeded",
		apiKey, httpReq.Method, httpReq.URL.Path)
}
