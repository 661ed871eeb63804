package router

import (
	"net/http"

	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/gorilla/mux"
)

func wrapHandler[Request, Response any](
	router *Router, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, httpReq *http.Request) {
		ctx := xcontext.WithHTTPRequest(httpReq.Context(), httpReq)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithPathParams(ctx, mux.Vars(httpReq))
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithDB(ctx, router.db)

		var err error
		for _, middleware := range router.befores {
			if ctx, err = middleware(ctx); err != nil {
				break
			}
		}

		var resp any
		if err == nil {
			req := new(Request)
			if err = bindRequest(ctx, httpReq, req); err == nil {
				var response *Response
				if response, err = handler(ctx, req); err == nil && response != nil {
					resp = response
				}
			}
		}

		if err == nil {
			for _, middleware := range router.afters {
				if ctx, err = middleware(ctx); err != nil {
					break
				}
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
		} else {
			ctx = xcontext.WithResponse(ctx, resp)
		}

		writeResponse(ctx, w, httpReq.Method, resp, err)

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}
