package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RequestIDHeader é o cabeçalho usado para propagar o ID de correlação
const RequestIDHeader = "X-Request-ID"

// dataSourceHeader é preenchido por /api/data com a origem dos registros
const dataSourceHeader = "X-Data-Source"

const slowRequestThreshold = 500 * time.Millisecond

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.status = status
	sw.ResponseWriter.WriteHeader(status)
}

// requestFields monta os campos de log de uma requisição ao dashboard.
// Em desenvolvimento o pacote log descarta os campos fora da lista curta.
func requestFields(r *http.Request, sw *statusWriter, elapsed time.Duration) log.Fields {
	fields := log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": sw.status,
		"duration_ms": elapsed.Milliseconds(),
		"remote_addr": r.RemoteAddr,
		"user_agent":  r.UserAgent(),
	}

	query := r.URL.Query()
	if start := query.Get("start_date"); start != "" {
		fields["start_date"] = start
	}
	if end := query.Get("end_date"); end != "" {
		fields["end_date"] = end
	}
	if source := sw.Header().Get(dataSourceHeader); source != "" {
		fields["source"] = source
	}

	return fields
}

// LoggingMiddleware propaga o X-Request-ID e registra uma linha por requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(RequestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, correlationID)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			startedAt := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(startedAt)
			logger := log.ForContext(ctx).WithFields(requestFields(r, sw, elapsed))

			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case sw.status >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			case elapsed > slowRequestThreshold:
				logger.Warnf("Requisição lenta (%s)", elapsed.Round(time.Millisecond))
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

// LogPanicMiddleware recupera panics, registra a pilha e responde 500 genérico
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(recovered),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				})
				logger.Error("Panic ao processar requisição")

				// o filtro de desenvolvimento descarta stack_trace; imprime direto no terminal
				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
