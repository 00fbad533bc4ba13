package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New(validator.WithRequiredStructEnabled())

// DataSourceHeader informa de onde vieram os registros (store, synthetic ou cache)
const DataSourceHeader = "X-Data-Source"

// RangeQuery são os parâmetros de período aceitos por /api/data e /api/summary
type RangeQuery struct {
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
}

type rangeParams struct {
	start time.Time
	end   time.Time
}

// parseRangeQuery lê start_date e end_date da query string. Em caso de erro já escreve a resposta.
func parseRangeQuery(w http.ResponseWriter, r *http.Request) (*rangeParams, bool) {
	query := RangeQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := validate.Struct(query); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "required" {
					apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
					return nil, false
				}
			}
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	// o validator já garantiu o formato
	start, _ := time.Parse(time.DateOnly, query.StartDate)
	end, _ := time.Parse(time.DateOnly, query.EndDate)

	return &rangeParams{start: start, end: end}, true
}

// GetSalesData devolve os registros diários do período em ordem crescente
func GetSalesData(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseRangeQuery(w, r)
		if !ok {
			return
		}

		result, err := service.Fetch(r.Context(), params.start, params.end)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(DataSourceHeader, string(result.Source))
		if err := json.NewEncoder(w).Encode(result.Records); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales: erro ao enviar resposta")
		}
	}
}

// GetSalesSummary devolve os KPIs do período
func GetSalesSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseRangeQuery(w, r)
		if !ok {
			return
		}

		summary, err := service.Summarize(r.Context(), params.start, params.end)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales: erro ao enviar resposta")
		}
	}
}

// writeReportError traduz os erros do serviço de relatórios; erros desconhecidos viram 500 genérico
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) && apiErrors.StatusFor(reportErr.Code) < http.StatusInternalServerError {
		logger.Warn("sales: requisição inválida")
		message := reportErr.Details
		if message == "" {
			message = "Período inválido"
		}
		apiErrors.WriteError(w, reportErr.Code, message, nil)
		return
	}

	logger.Error("sales: erro ao processar requisição")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "", nil)
}
