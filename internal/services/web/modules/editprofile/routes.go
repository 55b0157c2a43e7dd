package editprofile

import (
	"net/http"

	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.EditUserProfile, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.EditUserProfile, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.EditUserProfileValidate, h.handleValidate)
	mux.HandleFunc(routepath.EditUserProfile+"/", h.handleNotFound)
}
