package profile

import (
	"time"

	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
	webtemplates "github.com/louisbranch/charactercatalog/internal/services/web/templates"
)

// LastUpdatedLayout formats the profile page "Last Updated" date.
const LastUpdatedLayout = "Jan 2, 2006"

type service struct {
	now func() time.Time
}

func newService(now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{now: now}
}

// buildView derives display values. Without a saved profile every field is
// the not-available sentinel. The caller supplies already localized
// fallback copy.
func (s service) buildView(profile userprofile.Profile, found bool, fallback fallbackCopy) webtemplates.ProfileView {
	if !found {
		return webtemplates.ProfileView{
			Title:              fallback.notAvailableTitle,
			LastUpdated:        fallback.never,
			Age:                userprofile.NotAvailable,
			Location:           userprofile.NotAvailable,
			FavoriteCharacter:  userprofile.NotAvailable,
			FavoriteMovie:      userprofile.NotAvailable,
			FavoriteDisneyland: userprofile.NotAvailable,
		}
	}
	now := s.now()
	return webtemplates.ProfileView{
		Title:              profile.FirstName + " " + profile.LastName,
		LastUpdated:        now.Format(LastUpdatedLayout),
		Age:                userprofile.Age(profile.BirthDate, now),
		Location:           userprofile.Location(profile.City, profile.State),
		FavoriteCharacter:  userprofile.OrNotAvailable(profile.FavoriteCharacter),
		FavoriteMovie:      userprofile.OrNotAvailable(profile.FavoriteMovie),
		FavoriteDisneyland: userprofile.OrNotAvailable(profile.FavoriteDisneyland),
	}
}

type fallbackCopy struct {
	notAvailableTitle string
	never             string
}
