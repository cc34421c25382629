package amion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/medrota/rotagap/core/model"
	"github.com/medrota/rotagap/infra/logger"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// ReportURL builds the tab-separated report URL for the given date range.
// The Day/Month/Days parameters encode the range start and its length; the
// month parameter carries a two-digit year suffix.
func ReportURL(base, passkey string, start, end time.Time) string {
	delta := int(end.Sub(start).Hours() / 24)
	return fmt.Sprintf("%s?Lo=%s&Rpt=625ctabs&Day=%d&Month=%d-%02d&Days=%d",
		base, url.QueryEscape(passkey), start.Day(), int(start.Month()), start.Year()%100, delta)
}

// Client fetches schedule exports over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewClient creates a Client from the configuration.
func NewClient(cfg Config) *Client {
	cfg.SetDefaults()
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    logger.New("amion-client"),
	}
}

// FetchYear downloads and parses the export for one academic year. An
// unknown year code yields an empty slice, matching the degenerate date
// range it resolves to.
func (c *Client) FetchYear(ctx context.Context, year string) ([]model.RawRecord, error) {
	ay := LookupYear(year)
	u := ReportURL(c.cfg.BaseURL, c.cfg.Passkey, ay.Start, ay.End)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/plain, */*;q=0.9")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s export: %w", year, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Errorf("close body: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s export: unexpected status %s", year, resp.Status)
	}

	rows, err := ParseExport(resp.Body)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse %s export: %w", year, err)
	}
	for i := range rows {
		rows[i].AcademicYear = year
	}
	c.log.Infof("fetched %d rows for %s", len(rows), year)
	return rows, nil
}

// FetchYears downloads the exports for all requested academic years and
// concatenates the rows.
func (c *Client) FetchYears(ctx context.Context, years []string) ([]model.RawRecord, error) {
	var all []model.RawRecord
	for _, y := range years {
		rows, err := c.FetchYear(ctx, y)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}
