package region

import (
	"testing"

	"github.com/de-tools/care-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name     string
		zip      string
		expected domain.Region
	}{
		{name: "exact table entry", zip: "90210", expected: domain.RegionWest},
		{name: "exact entry below numeric bands", zip: "02108", expected: domain.RegionNortheast},
		{name: "northeast band lower bound", zip: "10000", expected: domain.RegionNortheast},
		{name: "northeast band upper bound", zip: "19999", expected: domain.RegionNortheast},
		{name: "southeast band lower bound", zip: "20000", expected: domain.RegionSoutheast},
		{name: "southeast band upper bound", zip: "39999", expected: domain.RegionSoutheast},
		{name: "midwest band lower bound", zip: "40000", expected: domain.RegionMidwest},
		{name: "midwest band upper bound", zip: "59999", expected: domain.RegionMidwest},
		{name: "southwest band lower bound", zip: "60000", expected: domain.RegionSouthwest},
		{name: "southwest band upper bound", zip: "79999", expected: domain.RegionSouthwest},
		{name: "west band lower bound", zip: "80000", expected: domain.RegionWest},
		{name: "west band upper bound", zip: "99999", expected: domain.RegionWest},
		{name: "below all bands defaults", zip: "09999", expected: DefaultRegion},
		{name: "non-numeric defaults", zip: "abcde", expected: DefaultRegion},
		{name: "empty defaults", zip: "", expected: DefaultRegion},
		{name: "surrounding whitespace trimmed", zip: " 10001 ", expected: domain.RegionNortheast},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Resolve(tc.zip))
		})
	}
}

func TestResolver_Overrides(t *testing.T) {
	r := NewResolverWithTable(map[string]domain.Region{
		"60601": domain.RegionMidwest, // Chicago reprices as midwest despite the band
	})

	assert.Equal(t, domain.RegionMidwest, r.Resolve("60601"))
	// Built-in exact entries survive the overlay.
	assert.Equal(t, domain.RegionWest, r.Resolve("98101"))
	// Bands still apply to everything else.
	assert.Equal(t, domain.RegionSouthwest, r.Resolve("60602"))
}
