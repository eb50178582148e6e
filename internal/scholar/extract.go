// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"io"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// Structural landmarks of the profile "list works" table.
const (
	rowSelector   = "tr.gsc_a_tr"
	titleSelector = "a.gsc_a_at"
	yearSelector  = "td.gsc_a_y span"
	grayLines     = "td.gsc_a_t div.gs_gray"
)

// Extract parses doc and returns its publication rows in document order.
//
// Rows without a title link, or whose title is blank, are skipped. Missing
// year or venue landmarks leave the corresponding field empty. The returned
// sequence is evaluated lazily and is meant to be consumed once.
func Extract(doc io.Reader, baseURL string) (iter.Seq[types.RawRow], error) {
	d, err := goquery.NewDocumentFromReader(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	rows := d.Find(rowSelector)

	return func(yield func(types.RawRow) bool) {
		for i := range rows.Length() {
			row, ok := extractRow(rows.Eq(i), baseURL)
			if !ok {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}, nil
}

func extractRow(row *goquery.Selection, baseURL string) (types.RawRow, bool) {
	link := row.Find(titleSelector).First()
	if link.Length() == 0 {
		return types.RawRow{}, false
	}
	title := strings.TrimSpace(link.Text())
	if title == "" {
		return types.RawRow{}, false
	}

	href, _ := link.Attr("href")
	r := types.RawRow{
		Title:    title,
		Href:     ResolveURL(baseURL, href),
		YearText: strings.TrimSpace(row.Find(yearSelector).First().Text()),
	}

	// The first gray line lists authors, the second the venue.
	if venue := row.Find(grayLines).Eq(1); venue.Length() > 0 {
		r.VenueText = strings.TrimSpace(venue.Text())
		r.HasVenue = true
	}
	return r, true
}

// ResolveURL makes href absolute against baseURL. An empty href resolves to
// baseURL itself.
func ResolveURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return baseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return baseURL
	}
	return base.ResolveReference(u).String()
}

// ParseYear returns the year only when text is made entirely of ASCII digits
// and denotes a positive integer. No partial parsing is attempted.
func ParseYear(text string) *int {
	if text == "" {
		return nil
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return nil
		}
	}
	y, err := strconv.Atoi(text)
	if err != nil || y <= 0 {
		return nil
	}
	return &y
}
