package profile

import (
	"net/http"

	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.UserProfile, h.handleProfile)
}
