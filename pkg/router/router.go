package router

import (
	"context"
	"net/http"

	"github.com/chirp-lab/backend/config"
	"github.com/chirp-lab/backend/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may derive a new context; a
// returned error short-circuits the handler.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, with the error or response
// available via xcontext.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux    *mux.Router
	cfg    config.Configs
	db     *gorm.DB
	logger logger.Logger

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    mux.NewRouter(),
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// Branch returns a router sharing the underlying mux but with an independent
// middleware chain seeded from the current one.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodGet)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodPost)
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodDelete)
}

// Handle mounts a plain http.Handler, e.g. the metrics endpoint.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) Static(prefix, root string) {
	r.mux.PathPrefix(prefix).Handler(
		http.StripPrefix(prefix, http.FileServer(http.Dir(root))))
}

func (r *Router) Handler() http.Handler {
	return cors.AllowAll().Handler(r.mux)
}
