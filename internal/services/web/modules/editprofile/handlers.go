package editprofile

import (
	"bytes"
	"log"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/flash"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/charactercatalog/internal/services/web/platform/i18n"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/pagerender"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/profilecookie"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/weberror"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/charactercatalog/internal/services/web/templates"
	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
)

// SavedNoticeKey is the flash copy key shown after a successful save.
const SavedNoticeKey = "profile.notice.saved"

type handlers struct {
	deps   module.Dependencies
	logger *log.Logger
}

func newHandlers(deps module.Dependencies, logger *log.Logger) handlers {
	return handlers{deps: deps, logger: logger}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	profile, _, err := profilecookie.Read(r)
	if err != nil {
		h.logger.Printf("profile cookie unreadable: request_path=%s err=%v", r.URL.Path, err)
		profile = userprofile.Profile{}
	}
	h.writeForm(w, r, webtemplates.ProfileFormView{Profile: profile}, http.StatusOK)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.SameOrigin(r, h.deps.SchemePolicy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	profile, err := parseProfileForm(w, r)
	if err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "parse profile form", err), h.deps)
		return
	}
	if err := profile.Validate(); err != nil {
		h.writeForm(w, r, webtemplates.ProfileFormView{Profile: profile, ShowErrors: true}, http.StatusUnprocessableEntity)
		return
	}
	if err := profilecookie.Save(w, r, profile, h.deps.SchemePolicy); err != nil {
		h.logger.Printf("profile save failed: request_path=%s err=%v", r.URL.Path, err)
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	flash.Write(w, r, flash.Success(SavedNoticeKey), h.deps.SchemePolicy)
	httpx.WriteRedirect(w, r, routepath.UserProfile)
}

// handleValidate returns only the submit button so htmx can swap its
// disabled state while the visitor types.
func (h handlers) handleValidate(w http.ResponseWriter, r *http.Request) {
	profile, err := parseProfileForm(w, r)
	if err != nil {
		profile = userprofile.Profile{}
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	var buf bytes.Buffer
	if err := webtemplates.SubmitButton(profile.Complete(), loc).Render(httpx.RequestContext(r), &buf); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, view webtemplates.ProfileFormView, status int) {
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      "title.edit_profile",
		StatusCode: status,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.ProfileForm(view, loc)
		},
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
