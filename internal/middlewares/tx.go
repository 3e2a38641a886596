package middlewares

import (
	"context"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
)

// TxMiddleware runs every mutating request inside a database transaction.
// The transaction commits when the handler answers below 400 and rolls back
// otherwise. GET, HEAD and OPTIONS requests pass through untouched. Hooks
// registered with AfterCommit run once the commit succeeded, before the
// response is flushed.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			rw := newBufferedWriter(w)
			next.ServeHTTP(rw, r.WithContext(setTxToContext(r.Context(), state)))

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				rw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			state.runHooks(context.WithoutCancel(r.Context()))
			rw.flush()
		})
	}
}

// bufferedWriter holds the response back until the transaction outcome is
// known, so a failed commit can still be reported to the client.
type bufferedWriter struct {
	w          http.ResponseWriter
	header     http.Header
	statusCode int
	body       []byte
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{w: w, header: http.Header{}, statusCode: http.StatusOK}
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) { bw.statusCode = code }

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) flush() {
	dst := bw.w.Header()
	for k, v := range bw.header {
		dst[k] = v
	}
	bw.w.WriteHeader(bw.statusCode)
	bw.w.Write(bw.body)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// txState is the request-scoped transaction and the hooks waiting for its commit.
type txState struct {
	tx    *sqlx.Tx
	mu    sync.Mutex
	hooks []func(context.Context)
}

func (s *txState) runHooks(ctx context.Context) {
	s.mu.Lock()
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(ctx)
	}
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txKey, state)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit defers fn until the request transaction has committed. Hooks
// of a rolled back transaction are dropped. Without a transaction fn runs
// immediately.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn(ctx)
		return
	}

	state.mu.Lock()
	state.hooks = append(state.hooks, fn)
	state.mu.Unlock()
}
