package character

import (
	"context"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) GetCharacter(context.Context, string) (catalog.Character, error) {
	return catalog.Character{}, apperrors.E(apperrors.KindUnavailable, "catalog is not configured")
}

func (unavailableGateway) ListCharacters(context.Context) ([]catalog.Character, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "catalog is not configured")
}
