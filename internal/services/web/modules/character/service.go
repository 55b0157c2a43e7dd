package character

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

// FeaturedSize is how many characters the featured strip shows.
const FeaturedSize = 4

// CatalogGateway reads one character and the full list for the featured strip.
type CatalogGateway interface {
	GetCharacter(ctx context.Context, id string) (catalog.Character, error)
	ListCharacters(ctx context.Context) ([]catalog.Character, error)
}

type detailContent struct {
	Character catalog.Character
	Featured  []catalog.Character
}

type service struct {
	gateway CatalogGateway
}

func newService(gateway CatalogGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// loadDetail fetches the character and the featured list concurrently. Only
// the character lookup can fail the page; a featured failure leaves the strip
// empty.
func (s service) loadDetail(ctx context.Context, id string) (detailContent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return detailContent{}, apperrors.E(apperrors.KindNotFound, "character id is required")
	}

	var content detailContent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		character, err := s.gateway.GetCharacter(gctx, id)
		if err != nil {
			return err
		}
		if !character.Exists() {
			return apperrors.E(apperrors.KindNotFound, "character not found")
		}
		content.Character = character
		return nil
	})
	g.Go(func() error {
		all, err := s.gateway.ListCharacters(gctx)
		if err != nil {
			log.Printf("character featured lookup failed: id=%s err=%v", id, err)
			return nil
		}
		content.Featured = catalog.Featured(all, FeaturedSize)
		return nil
	})
	if err := g.Wait(); err != nil {
		return detailContent{}, err
	}
	return content, nil
}
