package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/baxromumarov/medal-map/internal/httpx"
)

// IMOScraper reads the cumulative medal table from the Wikipedia
// "List of countries by medal count" article. Row layout:
// rank, country, gold, silver, bronze, total.
type IMOScraper struct {
	url     string
	fetcher *httpx.CollyFetcher
}

func NewIMOScraper(url string, fetcher *httpx.CollyFetcher) *IMOScraper {
	return &IMOScraper{url: url, fetcher: fetcher}
}

func (s *IMOScraper) Olympiad() Olympiad {
	return IMO
}

func (s *IMOScraper) FetchMedals(ctx context.Context) (Result, error) {
	var (
		res   Result
		found bool
	)
	if err := s.fetcher.Fetch(ctx, s.url, func(c *colly.Collector) {
		c.OnHTML("table.wikitable", func(e *colly.HTMLElement) {
			if found {
				return
			}
			found = true
			res = parseIMOTable(e.DOM)
		})
	}); err != nil {
		return Result{}, fmt.Errorf("imo fetch failed: %w", err)
	}
	if !found {
		return Result{}, &ParseError{Source: "imo", Reason: "no wikitable in page"}
	}
	if len(res.Rows) == 0 {
		return Result{}, &ParseError{Source: "imo", Reason: "wikitable had no parsable rows"}
	}
	return res, nil
}

func parseIMOTable(table *goquery.Selection) Result {
	var res Result
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header
		}
		cells := row.Find("td, th")
		if cells.Length() < 6 {
			return
		}

		name := imoCountryName(cells.Eq(1))
		if len(name) <= 2 {
			return // footnote or decoration row
		}

		gold, okG := cellInt(cells.Eq(2).Text())
		silver, okS := cellInt(cells.Eq(3).Text())
		bronze, okB := cellInt(cells.Eq(4).Text())
		if !okG || !okS || !okB {
			res.SkippedRows++
			return
		}

		res.Rows = append(res.Rows, MedalRow{
			Country: name,
			Gold:    gold,
			Silver:  silver,
			Bronze:  bronze,
		})
	})
	return res
}

// imoCountryName pulls the country name out of a flag cell, skipping
// footnote anchors (bracketed cite markers, single characters, or links
// whose title does not match their text).
func imoCountryName(cell *goquery.Selection) string {
	name := ""
	cell.Find("a").Each(func(_ int, link *goquery.Selection) {
		text := cleanCell(link.Text())
		if len(text) <= 1 || strings.HasPrefix(text, "[") {
			return
		}
		title := strings.TrimSpace(link.AttrOr("title", ""))
		if title != "" && text != title {
			return
		}
		name = text
	})
	if name == "" {
		name = cleanCell(cell.Text())
	}
	return name
}
