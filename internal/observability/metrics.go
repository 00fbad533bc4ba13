package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const namespace = "sales_dashboard"

// Metrics coleta as métricas Prometheus da API e do serviço de relatórios
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	fetchesTotal    *prometheus.CounterVec
	fetchedRows     *prometheus.HistogramVec
	storeFailures   prometheus.Counter
	persistedRows   prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP por rota e status.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP por rota.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "range_fetches_total",
		Help:      "Consultas por período, pela origem dos dados (store, synthetic, cache).",
	}, []string{"source"})
	rows := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "range_fetch_rows",
		Help:      "Quantidade de dias devolvidos por consulta.",
		Buckets:   []float64{1, 7, 30, 90, 365, 1095, 3660},
	}, []string{"source"})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_failures_total",
		Help:      "Falhas de acesso ao banco tratadas com dados sintéticos.",
	})
	persisted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "synthetic_rows_persisted_total",
		Help:      "Linhas sintéticas gravadas no banco.",
	})

	registry.MustRegister(
		requests, duration, fetches, rows, failures, persisted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		fetchesTotal:    fetches,
		fetchedRows:     rows,
		storeFailures:   failures,
		persistedRows:   persisted,
	}
}

// Handler devolve o http.Handler do endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Instrument mede as requisições de uma rota. O rótulo é o padrão registrado, não o path real.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ObserveFetch(source domain.RangeSource, rows int) {
	if m == nil {
		return
	}
	m.fetchesTotal.WithLabelValues(string(source)).Inc()
	m.fetchedRows.WithLabelValues(string(source)).Observe(float64(rows))
}

func (m *Metrics) ObserveStoreFailure() {
	if m == nil {
		return
	}
	m.storeFailures.Inc()
}

func (m *Metrics) ObservePersisted(rows int) {
	if m == nil {
		return
	}
	m.persistedRows.Add(float64(rows))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
