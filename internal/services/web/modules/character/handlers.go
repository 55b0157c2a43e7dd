package character

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
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

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.loadDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := webtemplates.CharacterDetailView{Character: content.Character, Featured: content.Featured}
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		TitleText: content.Character.Name,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.CharacterDetail(view, loc)
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
