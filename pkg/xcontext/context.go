package xcontext

import (
	"context"
	"net/http"
	"time"

	"github.com/chirp-lab/backend/config"
	"github.com/chirp-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	dbKey          struct{}
	txKey          struct{}
	httpRequestKey struct{}
	httpWriterKey  struct{}
	pathParamsKey  struct{}
	startTimeKey   struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	if cfg, ok := ctx.Value(configsKey{}).(config.Configs); ok {
		return cfg
	}
	return config.Configs{}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}
	return logger.NewLogger("info")
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the transaction bound to this context if one is open, otherwise
// the root database handle.
func DB(ctx context.Context) *gorm.DB {
	if tx := currentTx(ctx); tx != nil {
		return tx.tx
	}

	if db, ok := ctx.Value(dbKey{}).(*gorm.DB); ok {
		return db
	}
	return nil
}

type dbTransaction struct {
	tx   *gorm.DB
	done bool
}

func currentTx(ctx context.Context) *dbTransaction {
	if tx, ok := ctx.Value(txKey{}).(*dbTransaction); ok && !tx.done {
		return tx
	}
	return nil
}

// WithDBTransaction begins a transaction and replaces the value returned by
// DB until the transaction is committed or rolled back.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, &dbTransaction{tx: DB(ctx).Begin()})
}

// WithCommitDBTransaction commits the transaction of this context if it is
// still open.
func WithCommitDBTransaction(ctx context.Context) {
	if tx := currentTx(ctx); tx != nil {
		tx.tx.Commit()
		tx.done = true
	}
}

// WithRollbackDBTransaction rollbacks the transaction of this context if it
// is still open. It is safe to defer even when the transaction commits.
func WithRollbackDBTransaction(ctx context.Context) {
	if tx := currentTx(ctx); tx != nil {
		tx.tx.Rollback()
		tx.done = true
	}
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	if r, ok := ctx.Value(httpRequestKey{}).(*http.Request); ok {
		return r
	}
	return nil
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	if w, ok := ctx.Value(httpWriterKey{}).(http.ResponseWriter); ok {
		return w
	}
	return nil
}

func WithPathParams(ctx context.Context, params map[string]string) context.Context {
	return context.WithValue(ctx, pathParamsKey{}, params)
}

func PathParams(ctx context.Context) map[string]string {
	if params, ok := ctx.Value(pathParamsKey{}).(map[string]string); ok {
		return params
	}
	return nil
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(startTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Time{}
}
