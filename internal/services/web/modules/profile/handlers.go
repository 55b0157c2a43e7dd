package profile

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	webi18n "github.com/louisbranch/charactercatalog/internal/services/web/platform/i18n"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/pagerender"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/profilecookie"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/charactercatalog/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
	logger  *log.Logger
}

func newHandlers(s service, deps module.Dependencies, logger *log.Logger) handlers {
	return handlers{service: s, deps: deps, logger: logger}
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, found, err := profilecookie.Read(r)
	if err != nil {
		h.logger.Printf("profile cookie unreadable: request_path=%s err=%v", r.URL.Path, err)
		found = false
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title: "title.profile",
		Fragment: func(loc webi18n.Localizer) templ.Component {
			view := h.service.buildView(profile, found, fallbackCopy{
				notAvailableTitle: webtemplates.T(loc, "profile.not_available"),
				never:             webtemplates.T(loc, "profile.never"),
			})
			return webtemplates.ProfilePage(view, loc)
		},
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
