// Package userprofile models the locally owned visitor profile and the
// display values derived from it.
package userprofile

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

// NotAvailable is shown in place of missing or non-derivable values.
const NotAvailable = "Not Available"

// MillisecondsPerYear is the fixed year length used for age, 365.25 days.
const MillisecondsPerYear int64 = 31557600000

// RequiredFieldsKey is the copy key used when a required field is blank.
const RequiredFieldsKey = "profile.error.required_fields"

// Profile is the visitor-entered preference record. It is always replaced
// wholesale; there are no partial updates.
type Profile struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	BirthDate          string `json:"birthDate"`
	City               string `json:"city"`
	State              string `json:"state"`
	FavoriteCharacter  string `json:"favoriteCharacter"`
	FavoriteMovie      string `json:"favoriteMovie"`
	FavoriteDisneyland string `json:"favoriteDisneyland"`
}

// Complete reports whether first name, last name and birth date are non-blank.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.FirstName) != "" &&
		strings.TrimSpace(p.LastName) != "" &&
		strings.TrimSpace(p.BirthDate) != ""
}

// Validate returns an invalid-input error when Complete is false.
func (p Profile) Validate() error {
	if p.Complete() {
		return nil
	}
	return apperrors.EK(apperrors.KindInvalidInput, RequiredFieldsKey, "first name, last name and birth date are required")
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Encode serializes the profile as JSON.
func Encode(p Profile) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON profile.
func Decode(raw string) (Profile, error) {
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

var birthDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseBirthDate accepts the date layouts offered by the edit form.
func ParseBirthDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Age returns whole elapsed years between birthDate and now using the fixed
// MillisecondsPerYear. It returns NotAvailable when the date is missing,
// unparseable, or yields a non-positive age.
func Age(birthDate string, now time.Time) string {
	born, ok := ParseBirthDate(birthDate)
	if !ok {
		return NotAvailable
	}
	elapsed := now.Sub(born).Milliseconds()
	years := int64(math.Floor(float64(elapsed) / float64(MillisecondsPerYear)))
	if years <= 0 {
		return NotAvailable
	}
	return strconv.FormatInt(years, 10)
}

// Location joins city and state, falling back to whichever is present.
func Location(city, state string) string {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	case state != "":
		return state
	default:
		return NotAvailable
	}
}

// OrNotAvailable returns value, or NotAvailable when blank.
func OrNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}
