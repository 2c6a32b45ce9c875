package region

import (
	"strconv"
	"strings"

	"github.com/de-tools/care-atlas/pkg/models/domain"
)

// DefaultRegion is where unmapped or malformed ZIP codes land. The resolver
// never fails; a typoed ZIP silently prices as southwest. Flagged for product
// review in DESIGN.md rather than turned into a validation error here.
const DefaultRegion = domain.RegionSouthwest

// Resolver maps a patient's ZIP code to a pricing region.
type Resolver interface {
	Resolve(zipCode string) domain.Region
}

type resolver struct {
	exact map[string]domain.Region
}

// NewResolver returns a resolver over the built-in exact ZIP table and the
// numeric band fallback.
func NewResolver() Resolver {
	return &resolver{exact: defaultZipRegions()}
}

// NewResolverWithTable overlays extra exact ZIP entries on the built-in table.
func NewResolverWithTable(overrides map[string]domain.Region) Resolver {
	exact := defaultZipRegions()
	for zip, r := range overrides {
		exact[zip] = r
	}
	return &resolver{exact: exact}
}

func (r *resolver) Resolve(zipCode string) domain.Region {
	zip := strings.TrimSpace(zipCode)

	if region, ok := r.exact[zip]; ok {
		return region
	}

	n, err := strconv.Atoi(zip)
	if err != nil {
		return DefaultRegion
	}

	switch {
	case n >= 10000 && n <= 19999:
		return domain.RegionNortheast
	case n >= 20000 && n <= 39999:
		return domain.RegionSoutheast
	case n >= 40000 && n <= 59999:
		return domain.RegionMidwest
	case n >= 60000 && n <= 79999:
		return domain.RegionSouthwest
	case n >= 80000 && n <= 99999:
		return domain.RegionWest
	default:
		return DefaultRegion
	}
}

func defaultZipRegions() map[string]domain.Region {
	return map[string]domain.Region{
		"10001": domain.RegionNortheast,
		"02108": domain.RegionNortheast, // below the numeric bands, exact entry only
		"33101": domain.RegionSoutheast,
		"44101": domain.RegionMidwest,
		"75201": domain.RegionSouthwest,
		"90210": domain.RegionWest,
		"98101": domain.RegionWest,
	}
}
