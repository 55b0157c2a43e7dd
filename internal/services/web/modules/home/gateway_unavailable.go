package home

import (
	"context"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListCharacters(context.Context) ([]catalog.Character, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "catalog is not configured")
}
