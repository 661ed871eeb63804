package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chirp-lab/backend/internal/common"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/gorilla/mux"
)

func WithStartTime(ctx context.Context) (context.Context, error) {
	return xcontext.WithStartTime(ctx, time.Now()), nil
}

// Prometheus records the request counter and latency histogram. Labels use
// the route template, not the raw path, to keep the cardinality bounded.
func Prometheus(ctx context.Context) {
	httpReq := xcontext.HTTPRequest(ctx)

	path := httpReq.URL.Path
	if route := mux.CurrentRoute(httpReq); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			path = tpl
		}
	}

	status := http.StatusOK
	if httpReq.Method == http.MethodPost {
		status = http.StatusCreated
	}
	if err := xcontext.Error(ctx); err != nil {
		errx := errorx.Unknown
		errors.As(err, &errx)
		status = errx.Code.HTTPStatus()
	}

	labels := []string{httpReq.Method, path, strconv.Itoa(status)}
	common.PromCounters[common.HTTPRequestTotal].WithLabelValues(labels...).Inc()

	if start := xcontext.StartTime(ctx); !start.IsZero() {
		common.PromHistograms[common.HTTPRequestDurationSeconds].
			WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	}
}
