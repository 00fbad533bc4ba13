package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// StaticFiles serve o front-end do diretório informado. Caminhos de API sem rota recebem 404 em JSON.
func StaticFiles(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/v1/") {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
			return
		}

		files.ServeHTTP(w, r)
	})
}
