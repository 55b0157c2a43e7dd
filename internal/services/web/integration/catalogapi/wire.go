package catalogapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
)

// envelope is the response shape shared by every catalog endpoint.
type envelope struct {
	Info json.RawMessage `json:"info"`
	Data characterList   `json:"data"`
}

// characterList accepts "data" as an array, a single object, or an empty object.
type characterList []wireCharacter

func (l *characterList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []wireCharacter
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return err
		}
		if len(probe) == 0 {
			*l = nil
			return nil
		}
		var item wireCharacter
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return err
		}
		*l = characterList{item}
		return nil
	default:
		return fmt.Errorf("unexpected data payload %q", string(trimmed[:1]))
	}
}

// flexibleID accepts a JSON number or string.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("character id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = flexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = flexibleID(n.String())
	return nil
}

type wireCharacter struct {
	ID              flexibleID `json:"_id"`
	Name            string     `json:"name"`
	ImageURL        string     `json:"imageUrl"`
	SourceURL       string     `json:"sourceUrl"`
	URL             string     `json:"url"`
	UpdatedAt       string     `json:"updatedAt"`
	Films           []string   `json:"films"`
	ShortFilms      []string   `json:"shortFilms"`
	TVShows         []string   `json:"tvShows"`
	VideoGames      []string   `json:"videoGames"`
	ParkAttractions []string   `json:"parkAttractions"`
}

func (w wireCharacter) toDomain() catalog.Character {
	c := catalog.Character{
		ID:              string(w.ID),
		Name:            w.Name,
		ImageURL:        w.ImageURL,
		SourceURL:       w.SourceURL,
		Films:           w.Films,
		ShortFilms:      w.ShortFilms,
		TVShows:         w.TVShows,
		VideoGames:      w.VideoGames,
		ParkAttractions: w.ParkAttractions,
	}
	if c.SourceURL == "" {
		c.SourceURL = w.URL
	}
	if w.UpdatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, w.UpdatedAt); err == nil {
			c.UpdatedAt = parsed
		}
	}
	return c
}

func toDomain(list characterList) []catalog.Character {
	if len(list) == 0 {
		return nil
	}
	out := make([]catalog.Character, 0, len(list))
	for _, item := range list {
		out = append(out, item.toDomain())
	}
	return out
}
