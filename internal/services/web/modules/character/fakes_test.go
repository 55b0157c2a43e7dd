package character

import (
	"context"
	"sync/atomic"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

type fakeGateway struct {
	characters map[string]catalog.Character
	getErr     error
	all        []catalog.Character
	listErr    error
	getCalls   atomic.Int32
	listCalls  atomic.Int32
}

func (f *fakeGateway) GetCharacter(_ context.Context, id string) (catalog.Character, error) {
	f.getCalls.Add(1)
	if f.getErr != nil {
		return catalog.Character{}, f.getErr
	}
	c, ok := f.characters[id]
	if !ok {
		return catalog.Character{}, apperrors.E(apperrors.KindNotFound, "missing")
	}
	return c, nil
}

func (f *fakeGateway) ListCharacters(context.Context) ([]catalog.Character, error) {
	f.listCalls.Add(1)
	return f.all, f.listErr
}
