package scraper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/baxromumarov/medal-map/internal/httpx"
)

// IOIScraper reads the country statistics table from
// stats.ioinformatics.org. Column layout:
// (blank), country, host years, gold, silver, bronze, total.
type IOIScraper struct {
	url    string
	client *httpx.PoliteClient
}

func NewIOIScraper(url string, client *httpx.PoliteClient) *IOIScraper {
	return &IOIScraper{url: url, client: client}
}

func (s *IOIScraper) Olympiad() Olympiad {
	return IOI
}

func (s *IOIScraper) FetchMedals(ctx context.Context) (Result, error) {
	body, err := s.client.Get(ctx, s.url)
	if err != nil {
		return Result{}, fmt.Errorf("ioi fetch failed: %w", err)
	}

	doc, err := htmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return Result{}, &ParseError{Source: "ioi", Reason: err.Error()}
	}
	return parseIOIDocument(doc)
}

func parseIOIDocument(doc *html.Node) (Result, error) {
	table := htmlquery.FindOne(doc, "//table")
	if table == nil {
		return Result{}, &ParseError{Source: "ioi", Reason: "no table in page"}
	}

	var res Result
	for _, row := range htmlquery.Find(table, ".//tr") {
		cells := htmlquery.Find(row, "./td")
		if len(cells) < 6 {
			continue // header or decoration row
		}

		name := ioiCountryName(cells[1])
		if name == "" {
			continue
		}

		gold, okG := cellInt(htmlquery.InnerText(cells[3]))
		silver, okS := cellInt(htmlquery.InnerText(cells[4]))
		bronze, okB := cellInt(htmlquery.InnerText(cells[5]))
		if !okG || !okS || !okB {
			res.SkippedRows++
			continue
		}

		res.Rows = append(res.Rows, MedalRow{
			Country: name,
			Gold:    gold,
			Silver:  silver,
			Bronze:  bronze,
		})
	}
	if len(res.Rows) == 0 {
		return Result{}, &ParseError{Source: "ioi", Reason: "table had no parsable rows"}
	}
	return res, nil
}

func ioiCountryName(cell *html.Node) string {
	if link := htmlquery.FindOne(cell, ".//a"); link != nil {
		return cleanCell(htmlquery.InnerText(link))
	}
	return cleanCell(htmlquery.InnerText(cell))
}
