// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

func extractAll(t *testing.T, html string) []types.RawRow {
	t.Helper()
	seq, err := Extract(strings.NewReader(html), testBaseURL)
	require.NoError(t, err)
	return slices.Collect(seq)
}

func TestExtractFieldsInDocumentOrder(t *testing.T) {
	rows := extractAll(t, profilePage(
		fixtureRow{title: "First", href: "/citations?view_op=view_citation&amp;citation_for_view=a:1", authors: "V Katariya", venue: "arXiv preprint arXiv:2301.00001", year: "2023"},
		fixtureRow{title: "  Second  ", href: "https://example.org/p2", authors: "A B", venue: "IEEE Transactions on Y", year: "2021"},
	))

	require.Len(t, rows, 2)
	assert.Equal(t, "First", rows[0].Title)
	assert.Equal(t, "https://scholar.google.com/citations?view_op=view_citation&citation_for_view=a:1", rows[0].Href)
	assert.Equal(t, "2023", rows[0].YearText)
	assert.True(t, rows[0].HasVenue)
	assert.Equal(t, "arXiv preprint arXiv:2301.00001, 2023", rows[0].VenueText)

	assert.Equal(t, "Second", rows[1].Title)
	assert.Equal(t, "https://example.org/p2", rows[1].Href)
	assert.Equal(t, "2021", rows[1].YearText)
}

func TestExtractSkipsRowsWithoutTitle(t *testing.T) {
	rows := extractAll(t, profilePage(
		fixtureRow{noTitle: true, venue: "Nature", year: "2020"},
		fixtureRow{title: "   ", href: "/x", year: "2020"},
		fixtureRow{title: "Kept", href: "/k", year: "2019"},
	))

	require.Len(t, rows, 1)
	assert.Equal(t, "Kept", rows[0].Title)
}

func TestExtractMissingLandmarks(t *testing.T) {
	rows := extractAll(t, profilePage(
		fixtureRow{title: "No link", noHref: true, noVenue: true, year: ""},
	))

	require.Len(t, rows, 1)
	assert.Equal(t, testBaseURL, rows[0].Href)
	assert.Empty(t, rows[0].YearText)
	assert.False(t, rows[0].HasVenue)
}

func TestExtractNoRows(t *testing.T) {
	rows := extractAll(t, `<html><body><p>Please show you're not a robot</p></body></html>`)
	assert.Empty(t, rows)
}

func TestExtractStopsWhenConsumerStops(t *testing.T) {
	seq, err := Extract(strings.NewReader(profilePage(
		fixtureRow{title: "A", href: "/a"},
		fixtureRow{title: "B", href: "/b"},
		fixtureRow{title: "C", href: "/c"},
	)), testBaseURL)
	require.NoError(t, err)

	var seen []string
	for row := range seq {
		seen = append(seen, row.Title)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{"relative path", "/citations?x=1", "https://scholar.google.com/citations?x=1"},
		{"absolute", "https://doi.org/10.1/abc", "https://doi.org/10.1/abc"},
		{"empty", "", testBaseURL},
		{"blank", "   ", testBaseURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(testBaseURL, tt.href))
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"2023", 2023, true},
		{"1999", 1999, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-2023", 0, false},
		{"2023.5", 0, false},
		{"20 23", 0, false},
		{"+2023", 0, false},
		{"0", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseYear(tt.text)
			if !tt.ok {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
