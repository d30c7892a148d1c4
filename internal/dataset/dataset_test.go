package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/medal-map/internal/countries"
	"github.com/baxromumarov/medal-map/internal/scraper"
)

var (
	usa = countries.Country{Code: "USA", Alpha2: "US", Name: "United States"}
	chn = countries.Country{Code: "CHN", Alpha2: "CN", Name: "China"}
)

func TestBuilderCombinedTotals(t *testing.T) {
	b := NewBuilder()
	b.Add(scraper.IMO, usa, 10, 5, 2)
	b.Add(scraper.IOI, usa, 1, 1, 1)

	ds := b.Build(Metadata{Generated: "2026-01-01T00:00:00Z"})

	c, ok := ds.Countries["USA"]
	require.True(t, ok)
	require.Equal(t, MedalCount{Gold: 10, Silver: 5, Bronze: 2, Total: 17}, c.Medals.IMO)
	require.Equal(t, MedalCount{Gold: 1, Silver: 1, Bronze: 1, Total: 3}, c.Medals.IOI)
	require.Equal(t, MedalCount{}, c.Medals.IPhO)
	require.Equal(t, MedalCount{Gold: 11, Silver: 6, Bronze: 3, Total: 20}, c.Medals.Combined)
}

func TestBuilderFirstRowWins(t *testing.T) {
	b := NewBuilder()
	b.Add(scraper.IMO, chn, 100, 20, 5)
	b.Add(scraper.IMO, chn, 1, 1, 1)

	ds := b.Build(Metadata{})
	require.Equal(t, MedalCount{Gold: 100, Silver: 20, Bronze: 5, Total: 125}, ds.Countries["CHN"].Medals.IMO)
}

func TestBuilderZeroFill(t *testing.T) {
	b := NewBuilder()
	b.Add(scraper.IPhO, chn, 3, 2, 1)

	ds := b.Build(Metadata{})

	want := Country{
		Code:   "CHN",
		Alpha2: "CN",
		Name:   "China",
		Medals: Medals{
			IPhO:     MedalCount{Gold: 3, Silver: 2, Bronze: 1, Total: 6},
			Combined: MedalCount{Gold: 3, Silver: 2, Bronze: 1, Total: 6},
		},
	}
	if diff := cmp.Diff(want, ds.Countries["CHN"]); diff != "" {
		t.Errorf("country mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderOlympiads(t *testing.T) {
	b := NewBuilder()
	require.Empty(t, b.Olympiads())

	b.Add(scraper.IOI, usa, 1, 0, 0)
	b.Add(scraper.IMO, usa, 1, 0, 0)
	require.Equal(t, []scraper.Olympiad{scraper.IMO, scraper.IOI}, b.Olympiads())
}

func TestBuildDefaultsSources(t *testing.T) {
	b := NewBuilder()
	b.Add(scraper.IMO, usa, 1, 0, 0)

	ds := b.Build(Metadata{Generated: "2026-01-01T00:00:00Z"})
	require.Equal(t, []scraper.Olympiad{scraper.IMO}, ds.Metadata.Sources)

	explicit := b.Build(Metadata{Sources: []scraper.Olympiad{scraper.IPhO}})
	require.Equal(t, []scraper.Olympiad{scraper.IPhO}, explicit.Metadata.Sources)
}
