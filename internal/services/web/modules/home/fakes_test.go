package home

import (
	"context"
	"strconv"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
)

type fakeGateway struct {
	characters []catalog.Character
	err        error
	calls      int
}

func (f *fakeGateway) ListCharacters(context.Context) ([]catalog.Character, error) {
	f.calls++
	return f.characters, f.err
}

func numbered(n int) []catalog.Character {
	out := make([]catalog.Character, 0, n)
	for i := range n {
		id := strconv.Itoa(i + 1)
		out = append(out, catalog.Character{ID: id, Name: "Character " + id, Films: []string{"Film " + id}})
	}
	return out
}

// reverse is a deterministic stand-in for the random shuffle.
func reverse(characters []catalog.Character) {
	for i, j := 0, len(characters)-1; i < j; i, j = i+1, j-1 {
		characters[i], characters[j] = characters[j], characters[i]
	}
}
