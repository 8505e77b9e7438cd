package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// TableScraper implements the LocationSource port by scraping HTML pages
// that carry a table of locations: one row per location with name,
// latitude, and longitude cells.
//
// It coordinates:
//   - External page fetches with retry/backoff
//   - Polite per-host request pacing
//   - Row extraction preserving document order
//
// Document order matters: it becomes the solver's index order.
type TableScraper struct {
	session   *http.Client
	urls      []string
	limiter   *rate.Limiter
	selector  string
	userAgent string
}

func NewTableScraper(urls []string) (*TableScraper, error) {
	if len(urls) == 0 {
		return nil, errors.New("table scraper: at least one URL is required")
	}
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			return nil, errors.New("table scraper: URL must be non-empty")
		}
	}

	return &TableScraper{
		session: &http.Client{Timeout: 15 * time.Second},
		urls:    urls,
		// One request per second keeps the scrape polite toward the host.
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		selector:  "table tr",
		userAgent: "tour-planner-service/1.0",
	}, nil
}

// FetchLocations downloads each configured page in order and extracts
// (id, lat, lon) rows into a single ordered set.
func (s *TableScraper) FetchLocations(ctx context.Context) (_ *domain.LocationSet, err error) {
	defer obs.Time(ctx, "scrape.FetchLocations")(&err)

	set := domain.NewLocationSet()

	for _, url := range s.urls {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fetch locations: rate wait: %w", err)
		}

		resp, err := s.doWithRetry(ctx, func() (*http.Request, error) {
			return s.newRequest(ctx, url)
		})
		if err != nil {
			return nil, fmt.Errorf("fetch locations: get %q: %w", url, err)
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("fetch locations: parse %q: %w", url, err)
		}

		if err := s.extractRows(doc, set); err != nil {
			return nil, fmt.Errorf("fetch locations: %q: %w", url, err)
		}
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("fetch locations: %w: no location rows found", domain.ErrEmptyInput)
	}

	return set, nil
}

// extractRows walks table rows in document order and appends each
// parsable (name, lat, lon) triple to the set.
func (s *TableScraper) extractRows(doc *goquery.Document, set *domain.LocationSet) error {
	var rowErr error

	doc.Find(s.selector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 3 {
			// Header or layout row.
			return true
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		latText := strings.TrimSpace(cells.Eq(1).Text())
		lonText := strings.TrimSpace(cells.Eq(2).Text())

		if name == "" {
			rowErr = fmt.Errorf("row %d: empty location name", i)
			return false
		}

		lat, err := strconv.ParseFloat(latText, 64)
		if err != nil {
			rowErr = fmt.Errorf("row %d (%q): parse latitude %q: %w", i, name, latText, err)
			return false
		}
		lon, err := strconv.ParseFloat(lonText, 64)
		if err != nil {
			rowErr = fmt.Errorf("row %d (%q): parse longitude %q: %w", i, name, lonText, err)
			return false
		}

		loc := domain.Location{ID: name, Coordinates: domain.Coordinates{Lat: lat, Lon: lon}}
		if err := set.Add(loc); err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		return true
	})

	return rowErr
}
