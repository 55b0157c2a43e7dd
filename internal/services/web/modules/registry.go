package modules

import (
	"log"

	"github.com/louisbranch/charactercatalog/internal/services/web/modules/character"
	"github.com/louisbranch/charactercatalog/internal/services/web/modules/editprofile"
	"github.com/louisbranch/charactercatalog/internal/services/web/modules/home"
	"github.com/louisbranch/charactercatalog/internal/services/web/modules/profile"
)

// DefaultModules returns the browse, detail and profile areas in mount order.
func DefaultModules(deps Dependencies, logger *log.Logger) []Module {
	return []Module{
		home.New(deps),
		character.New(deps),
		profile.New(deps, logger),
		editprofile.New(deps, logger),
	}
}
