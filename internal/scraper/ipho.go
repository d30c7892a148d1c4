package scraper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/baxromumarov/medal-map/internal/httpx"
)

// IPhOScraper reads the country table from ipho-unofficial.org.
// Column layout: code, country, site, host, gold, silver, bronze, HM.
type IPhOScraper struct {
	url    string
	client *httpx.PoliteClient
}

func NewIPhOScraper(url string, client *httpx.PoliteClient) *IPhOScraper {
	return &IPhOScraper{url: url, client: client}
}

func (s *IPhOScraper) Olympiad() Olympiad {
	return IPhO
}

func (s *IPhOScraper) FetchMedals(ctx context.Context) (Result, error) {
	body, err := s.client.Get(ctx, s.url)
	if err != nil {
		return Result{}, fmt.Errorf("ipho fetch failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Result{}, &ParseError{Source: "ipho", Reason: err.Error()}
	}
	return parseIPhODocument(doc)
}

func parseIPhODocument(doc *goquery.Document) (Result, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Result{}, &ParseError{Source: "ipho", Reason: "no table in page"}
	}

	var res Result
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 7 {
			return // header or decoration row
		}

		name := iphoCountryName(cells.Eq(1))
		if name == "" {
			return
		}

		gold, okG := cellInt(cells.Eq(4).Text())
		silver, okS := cellInt(cells.Eq(5).Text())
		bronze, okB := cellInt(cells.Eq(6).Text())
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
	if len(res.Rows) == 0 {
		return Result{}, &ParseError{Source: "ipho", Reason: "table had no parsable rows"}
	}
	return res, nil
}

func iphoCountryName(cell *goquery.Selection) string {
	if link := cell.Find("a").First(); link.Length() > 0 {
		return cleanCell(link.Text())
	}
	return cleanCell(cell.Text())
}
