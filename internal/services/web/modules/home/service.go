package home

import (
	"context"
	"math/rand/v2"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
)

// GridSize is how many shuffled characters the browse grid shows.
const GridSize = 8

// FeaturedSize is how many characters the featured strip shows.
const FeaturedSize = 4

// CatalogGateway lists catalog characters.
type CatalogGateway interface {
	ListCharacters(ctx context.Context) ([]catalog.Character, error)
}

// ShuffleFunc reorders characters in place.
type ShuffleFunc func([]catalog.Character)

// RandomShuffle is a uniform in-place shuffle.
func RandomShuffle(characters []catalog.Character) {
	rand.Shuffle(len(characters), func(i, j int) {
		characters[i], characters[j] = characters[j], characters[i]
	})
}

// homeContent is the loaded browse page data.
type homeContent struct {
	Characters []catalog.Character
	Featured   []catalog.Character
}

type service struct {
	gateway CatalogGateway
	shuffle ShuffleFunc
}

func newService(gateway CatalogGateway, shuffle ShuffleFunc) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	return service{gateway: gateway, shuffle: shuffle}
}

// loadHome lists the catalog once. The grid is a shuffled sample and the
// featured strip is the tail of the unshuffled list.
func (s service) loadHome(ctx context.Context) (homeContent, error) {
	all, err := s.gateway.ListCharacters(ctx)
	if err != nil {
		return homeContent{}, err
	}
	featured := catalog.Featured(all, FeaturedSize)

	sample := make([]catalog.Character, len(all))
	copy(sample, all)
	s.shuffle(sample)
	if len(sample) > GridSize {
		sample = sample[:GridSize]
	}
	return homeContent{Characters: sample, Featured: featured}, nil
}
