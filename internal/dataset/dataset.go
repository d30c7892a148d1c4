// Package dataset aggregates per-olympiad medal tallies into the JSON
// structure consumed by the map renderer.
package dataset

import (
	"github.com/baxromumarov/medal-map/internal/countries"
	"github.com/baxromumarov/medal-map/internal/scraper"
)

type MedalCount struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
	Total  int `json:"total"`
}

func (m MedalCount) add(o MedalCount) MedalCount {
	return MedalCount{
		Gold:   m.Gold + o.Gold,
		Silver: m.Silver + o.Silver,
		Bronze: m.Bronze + o.Bronze,
		Total:  m.Total + o.Total,
	}
}

type Medals struct {
	IMO      MedalCount `json:"IMO"`
	IOI      MedalCount `json:"IOI"`
	IPhO     MedalCount `json:"IPhO"`
	Combined MedalCount `json:"combined"`
}

type Country struct {
	Code   string `json:"code"`
	Alpha2 string `json:"alpha2"`
	Name   string `json:"name"`
	Medals Medals `json:"medals"`
}

type Metadata struct {
	Generated string             `json:"generated"`
	IMOYears  string             `json:"imo_years"`
	IOIYears  string             `json:"ioi_years"`
	IPhOYears string             `json:"ipho_years"`
	Sources   []scraper.Olympiad `json:"sources"`
}

// Dataset is the generated file: countries keyed by ISO3 code, plus
// run metadata. Immutable once written.
type Dataset struct {
	Countries map[string]Country `json:"countries"`
	Metadata  Metadata           `json:"metadata"`
}

type tally struct {
	country countries.Country
	medals  MedalCount
}

// Builder accumulates resolved medal rows per olympiad. The first row
// seen for a country wins within one olympiad; source tables list each
// country once, and alias collisions (e.g. "Macao, China" after "China")
// must not double-count.
type Builder struct {
	byOlympiad map[scraper.Olympiad]map[string]tally
}

func NewBuilder() *Builder {
	return &Builder{byOlympiad: map[scraper.Olympiad]map[string]tally{}}
}

func (b *Builder) Add(oly scraper.Olympiad, c countries.Country, gold, silver, bronze int) {
	m, ok := b.byOlympiad[oly]
	if !ok {
		m = map[string]tally{}
		b.byOlympiad[oly] = m
	}
	if _, exists := m[c.Code]; exists {
		return
	}
	m[c.Code] = tally{
		country: c,
		medals: MedalCount{
			Gold:   gold,
			Silver: silver,
			Bronze: bronze,
			Total:  gold + silver + bronze,
		},
	}
}

// Olympiads reports which olympiads received at least one row.
func (b *Builder) Olympiads() []scraper.Olympiad {
	var out []scraper.Olympiad
	for _, oly := range []scraper.Olympiad{scraper.IMO, scraper.IOI, scraper.IPhO} {
		if len(b.byOlympiad[oly]) > 0 {
			out = append(out, oly)
		}
	}
	return out
}

// Build merges the per-olympiad tallies into the final dataset. Countries
// missing from a source get zero counts for that olympiad.
func (b *Builder) Build(meta Metadata) *Dataset {
	ds := &Dataset{
		Countries: map[string]Country{},
		Metadata:  meta,
	}
	if ds.Metadata.Sources == nil {
		ds.Metadata.Sources = b.Olympiads()
	}

	for _, perCountry := range b.byOlympiad {
		for code, t := range perCountry {
			if _, ok := ds.Countries[code]; ok {
				continue
			}
			ds.Countries[code] = Country{
				Code:   code,
				Alpha2: t.country.Alpha2,
				Name:   t.country.Name,
			}
		}
	}

	for code, c := range ds.Countries {
		c.Medals.IMO = b.medalsFor(scraper.IMO, code)
		c.Medals.IOI = b.medalsFor(scraper.IOI, code)
		c.Medals.IPhO = b.medalsFor(scraper.IPhO, code)
		c.Medals.Combined = c.Medals.IMO.add(c.Medals.IOI).add(c.Medals.IPhO)
		ds.Countries[code] = c
	}
	return ds
}

func (b *Builder) medalsFor(oly scraper.Olympiad, code string) MedalCount {
	if t, ok := b.byOlympiad[oly][code]; ok {
		return t.medals
	}
	return MedalCount{}
}
