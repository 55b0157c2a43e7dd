package home

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/charactercatalog/internal/services/web/platform/i18n"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/pagerender"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/charactercatalog/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := webtemplates.HomeView{}
	statusCode := http.StatusOK
	content, err := h.service.loadHome(r.Context())
	if err != nil {
		unavailable := apperrors.HTTPStatus(err) == http.StatusServiceUnavailable
		view.Failure = &webtemplates.NoResultsView{Unavailable: unavailable}
		if unavailable {
			statusCode = http.StatusServiceUnavailable
		}
	} else {
		view.Characters = content.Characters
		view.Featured = content.Featured
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      "app.name",
		StatusCode: statusCode,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.HomePage(view, loc)
		},
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
