package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
)

// ProfileView is the profile page model. Every display field is already
// resolved to a value or the not-available sentinel.
type ProfileView struct {
	Title              string
	LastUpdated        string
	Age                string
	Location           string
	FavoriteCharacter  string
	FavoriteMovie      string
	FavoriteDisneyland string
}

// ProfilePage renders the saved profile summary.
func ProfilePage(view ProfileView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("section", "class", "profile")
		m.element("h1", view.Title)
		m.element("p", T(loc, "profile.last_updated")+" "+view.LastUpdated, "class", "updated")
		m.raw("<dl>")
		rows := []struct{ key, value string }{
			{"profile.age", view.Age},
			{"profile.location", view.Location},
			{"profile.favorite_character", view.FavoriteCharacter},
			{"profile.favorite_movie", view.FavoriteMovie},
			{"profile.favorite_disneyland", view.FavoriteDisneyland},
		}
		for _, row := range rows {
			m.element("dt", T(loc, row.key)+":")
			m.element("dd", row.value)
		}
		m.raw("</dl>")
		m.render(ctx, LinkButton(T(loc, "profile.edit"), routepath.EditUserProfile, ""))
		m.close("section")
	})
}

// ProfileFormView is the edit form model.
type ProfileFormView struct {
	Profile userprofile.Profile
	// ShowErrors reveals the required-field message after a rejected submit.
	ShowErrors bool
}

// SubmitButtonID identifies the submit button swapped by live validation.
const SubmitButtonID = "profile-submit"

// ProfileForm renders the edit form prefilled from the saved profile.
func ProfileForm(view ProfileFormView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		p := view.Profile
		m.open("section", "class", "profile")
		m.element("h1", T(loc, "title.edit_profile"))
		if view.ShowErrors && !p.Complete() {
			m.element("div", T(loc, userprofile.RequiredFieldsKey), "class", "notice error", "role", "alert")
		}
		m.raw("<form")
		m.attr("class", "profile-form")
		m.attr("method", "post")
		m.attr("action", routepath.EditUserProfile)
		m.attr("hx-post", routepath.EditUserProfile)
		m.attr("hx-target", "#"+MainContentID)
		m.attr("hx-swap", "innerHTML")
		m.raw(">")

		m.render(ctx, textField(loc, "firstName", "profile.form.first_name", "text", p.FirstName, true))
		m.render(ctx, textField(loc, "lastName", "profile.form.last_name", "text", p.LastName, true))
		m.render(ctx, textField(loc, "birthDate", "profile.form.birth_date", "date", p.BirthDate, true))
		m.render(ctx, textField(loc, "city", "profile.form.city", "text", p.City, false))
		m.render(ctx, selectField(loc, "state", "profile.form.state", "profile.form.select_state", stateOptions(), p.State))
		m.render(ctx, textField(loc, "favoriteCharacter", "profile.favorite_character", "text", p.FavoriteCharacter, false))
		m.render(ctx, textField(loc, "favoriteMovie", "profile.favorite_movie", "text", p.FavoriteMovie, false))
		m.render(ctx, selectField(loc, "favoriteDisneyland", "profile.favorite_disneyland", "profile.form.select_park", parkOptions(), p.FavoriteDisneyland))

		m.open("div", "class", "actions")
		m.render(ctx, SubmitButton(p.Complete(), loc))
		m.render(ctx, LinkButton(T(loc, "profile.form.cancel"), routepath.UserProfile, "secondary"))
		m.close("div")
		m.raw("</form>")
		m.close("section")
	})
}

// SubmitButton renders the update button, disabled until the required
// fields are filled. The form re-validates on input and swaps this element.
func SubmitButton(enabled bool, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<button type="submit" class="button"`)
		m.attr("id", SubmitButtonID)
		m.attr("hx-post", routepath.EditUserProfileValidate)
		m.attr("hx-trigger", "input from:closest form delay:150ms, change from:closest form")
		m.attr("hx-target", "this")
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-include", "closest form")
		m.flag("disabled", !enabled)
		m.raw(">")
		m.text(T(loc, "profile.form.update"))
		m.close("button")
	})
}

type option struct {
	value string
	label string
}

// stateOptions stores the full state name and shows the abbreviation.
func stateOptions() []option {
	out := make([]option, 0, len(userprofile.USStates))
	for _, state := range userprofile.USStates {
		out = append(out, option{value: state.Label, label: state.Value})
	}
	return out
}

// parkOptions stores and shows the park name.
func parkOptions() []option {
	out := make([]option, 0, len(userprofile.DisneylandLocations))
	for _, park := range userprofile.DisneylandLocations {
		out = append(out, option{value: park.Label, label: park.Label})
	}
	return out
}

func fieldLabel(m *markup, loc Localizer, labelKey string, required bool) {
	m.text(T(loc, labelKey))
	if required {
		m.raw(`<span class="required" aria-hidden="true">*</span>`)
	}
}

func textField(loc Localizer, name, labelKey, inputType, value string, required bool) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw("<label>")
		fieldLabel(m, loc, labelKey, required)
		m.raw("<input")
		m.attr("type", inputType)
		m.attr("name", name)
		m.attr("value", value)
		m.flag("required", required)
		m.raw(">")
		m.raw("</label>")
	})
}

func selectField(loc Localizer, name, labelKey, promptKey string, options []option, selected string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw("<label>")
		fieldLabel(m, loc, labelKey, false)
		m.open("select", "name", name)
		m.raw(`<option value="">`)
		m.text(T(loc, promptKey))
		m.raw("</option>")
		for _, opt := range options {
			m.raw("<option")
			m.attr("value", opt.value)
			m.flag("selected", opt.value == selected)
			m.raw(">")
			m.text(opt.label)
			m.raw("</option>")
		}
		m.close("select")
		m.raw("</label>")
	})
}
