package http

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"runtime/debug"
	"time"

	"todo-api/internal/handler/http/requestid"
	"todo-api/internal/handler/http/respond"
	"todo-api/internal/handler/http/responsewriter"
	"todo-api/internal/observability/logging"
	"todo-api/internal/observability/tracing"

	"golang.org/x/time/rate"
)

// unknownRequestID is logged when no request ID was ever established.
const unknownRequestID = "unknown"

// Logging returns middleware that logs one structured record per request.
//
// It installs a requestid.State so the ID chosen further down the chain is
// visible here after next returns. Completed requests are logged as
// "request_completed". A panic from downstream is logged as "request_failed"
// with the status the client will receive and re-panicked with the original
// value. The logger is also placed in the request context for downstream
// use. Bodies and query strings are never logged.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx, state := requestid.WithState(r.Context())
			ctx = logging.WithLogger(ctx, logger)
			r = r.WithContext(ctx)

			// Wrap ResponseWriter to record status code
			wrapped := responsewriter.Wrap(w)

			defer func() {
				rec := recover()

				status := wrapped.StatusCode()
				if rec != nil {
					status = failedStatus(wrapped)
				}

				attrs := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status_code", status),
					slog.Float64("latency_ms", latencyMillis(time.Since(start))),
					slog.String("request_id", requestIDOrUnknown(state)),
					slog.String("trace_id", tracing.TraceIDFromContext(ctx)),
				}

				if rec == nil {
					attrs = append(attrs, slog.Int("bytes_written", wrapped.BytesWritten()))
					logger.Info("request_completed", attrs...)
					return
				}

				attrs = append(attrs,
					slog.String("error", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				logger.Error("request_failed", attrs...)
				panic(rec)
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

// latencyMillis converts d to milliseconds rounded to two decimals.
func latencyMillis(d time.Duration) float64 {
	return math.Round(float64(d)/float64(time.Millisecond)*100) / 100
}

// failedStatus is the status the client sees after a panic: whatever was
// already sent, otherwise the 500 that Recover writes.
func failedStatus(w *responsewriter.ResponseWriter) int {
	if w.Written() {
		return w.StatusCode()
	}
	return http.StatusInternalServerError
}

func requestIDOrUnknown(state *requestid.State) string {
	if id := state.ID(); id != "" {
		return id
	}
	return unknownRequestID
}

// Recover returns middleware that converts an escaping panic into a 500 JSON
// response. Response headers already set downstream, such as X-Request-ID,
// are kept. If the handler had already started writing, nothing more is
// written. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := responsewriter.Wrap(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				if wrapped.Written() {
					logger.Warn("panic after response started",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					return
				}

				respond.JSON(wrapped, http.StatusInternalServerError,
					respond.ErrorBody{Error: "internal server error"})
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

// LimitRequestBody returns middleware that limits the size of request bodies to prevent DoS attacks.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit returns middleware backed by a single token bucket shared by all
// clients. Requests beyond the bucket get 429 Too Many Requests. A
// non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				respond.Error(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
