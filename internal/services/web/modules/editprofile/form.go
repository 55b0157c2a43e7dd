package editprofile

import (
	"net/http"
	"strings"

	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
)

// maxFormBytes bounds the urlencoded form body.
const maxFormBytes = 64 << 10

// parseProfileForm reads every profile field from the posted form. Values
// are trimmed; the whole record replaces any saved profile.
func parseProfileForm(w http.ResponseWriter, r *http.Request) (userprofile.Profile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return userprofile.Profile{}, err
	}
	field := func(name string) string {
		return strings.TrimSpace(r.PostForm.Get(name))
	}
	return userprofile.Profile{
		FirstName:          field("firstName"),
		LastName:           field("lastName"),
		BirthDate:          field("birthDate"),
		City:               field("city"),
		State:              field("state"),
		FavoriteCharacter:  field("favoriteCharacter"),
		FavoriteMovie:      field("favoriteMovie"),
		FavoriteDisneyland: field("favoriteDisneyland"),
	}, nil
}
