package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Parâmetro ausente",
			code:       ErrMissingRequiredData,
			message:    "start_date e end_date são obrigatórios",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"start_date e end_date são obrigatórios","code":"VAL_002"}`,
		},
		{
			name:       "Erro interno esconde a mensagem original",
			code:       ErrInternalServer,
			message:    "pq: connection refused",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Erro interno do servidor","code":"SRV_001"}`,
		},
		{
			name:       "Serviço indisponível mantém a mensagem",
			code:       ErrUnavailable,
			message:    "Serviço de backfill não disponível",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"Serviço de backfill não disponível","code":"SRV_003"}`,
		},
		{
			name:       "Código desconhecido vira 500",
			code:       "XYZ",
			message:    "qualquer",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Erro interno do servidor","code":"XYZ"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, tt.message, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
