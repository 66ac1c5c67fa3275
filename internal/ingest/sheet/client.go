package sheet

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Worksheet names expected in the published workbook.
const (
	SheetPlayers    = "Players"
	SheetGames      = "Games"
	SheetEvents     = "Events"
	SheetGameRoster = "GameRoster"
)

// Workbook is the full published spreadsheet, one raw row slice per
// worksheet name.
type Workbook map[string][]Row

// Client fetches a published-to-web Google Sheet and extracts its worksheets
// as raw rows. The plain HTTP path handles the common case where the publish
// endpoint serves a static grid; when Google serves a script bootstrap
// instead, the client falls back to a headless render.
type Client struct {
	httpClient  *http.Client
	publishURL  string
	minInterval time.Duration

	mu        sync.Mutex
	lastFetch time.Time
}

// NewClient creates a sheet client for the given publish URL
// (".../pubhtml"). Fetches are spaced at least minInterval apart.
func NewClient(publishURL string, minInterval time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		publishURL:  publishURL,
		minInterval: minInterval,
	}
}

// FetchWorkbook downloads the published sheet and returns all worksheets.
func (c *Client) FetchWorkbook(ctx context.Context) (Workbook, error) {
	c.throttle(ctx)

	html, err := c.fetchHTML(ctx)
	if err != nil {
		return nil, err
	}

	workbook, err := parseWorkbook(html)
	if err != nil {
		return nil, err
	}

	// Publish endpoints occasionally serve a JS bootstrap page with no
	// grid markup. Render it in a headless browser and re-parse.
	if len(workbook) == 0 {
		log.Printf("Published sheet returned no grid markup, falling back to headless fetch")
		html, err = fetchRendered(ctx, c.publishURL)
		if err != nil {
			return nil, fmt.Errorf("headless fallback: %w", err)
		}
		workbook, err = parseWorkbook(html)
		if err != nil {
			return nil, err
		}
	}

	if len(workbook) == 0 {
		return nil, fmt.Errorf("no worksheets found at %s", c.publishURL)
	}
	return workbook, nil
}

func (c *Client) throttle(ctx context.Context) {
	c.mu.Lock()
	wait := c.minInterval - time.Since(c.lastFetch)
	c.lastFetch = time.Now().Add(wait)
	c.mu.Unlock()

	if wait <= 0 {
		return
	}
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}

func (c *Client) fetchHTML(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.publishURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; rinkside/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch published sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("published sheet returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// parseWorkbook extracts every worksheet grid from the pubhtml page. The
// sheet tabs live in the #sheet-menu list; each tab's anchor points at the
// div wrapping that sheet's table.
func parseWorkbook(html string) (Workbook, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet HTML: %w", err)
	}

	workbook := make(Workbook)

	menu := doc.Find("#sheet-menu li a")
	if menu.Length() == 0 {
		// Single-sheet workbooks publish without a menu; treat the lone
		// grid as the Events sheet only if it actually exists.
		if table := doc.Find("table.waffle").First(); table.Length() > 0 {
			workbook[SheetEvents] = parseGrid(table)
		}
		return workbook, nil
	}

	menu.Each(func(_ int, anchor *goquery.Selection) {
		name := strings.TrimSpace(anchor.Text())
		href, ok := anchor.Attr("href")
		if name == "" || !ok {
			return
		}
		gid := strings.TrimPrefix(href, "#")
		table := doc.Find("div[id='" + gid + "'] table.waffle").First()
		if table.Length() == 0 {
			return
		}
		workbook[name] = parseGrid(table)
	})

	return workbook, nil
}

// parseGrid converts one sheet table into rows keyed by the header row.
// Published grids carry a row-number gutter cell (th) per row, which
// goquery's td selector already skips.
func parseGrid(table *goquery.Selection) []Row {
	var headers []string
	var rows []Row

	table.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})

		if headers == nil {
			if !emptyCells(cells) {
				headers = cells
			}
			return
		}
		if emptyCells(cells) {
			return
		}

		row := make(Row, len(headers))
		for j, header := range headers {
			if header == "" {
				continue
			}
			if j < len(cells) {
				row[header] = cells[j]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	})

	return rows
}

func emptyCells(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}
