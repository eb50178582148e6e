// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the sync pipeline:
// raw rows scraped from the profile page, finalized publications, and
// run configuration.
package types

// Kind is the publication badge shown on the website.
type Kind string

const (
	KindArticle    Kind = "article"
	KindPreprint   Kind = "preprint"
	KindConference Kind = "conference"
	KindJournal    Kind = "journal"
)

// RawRow holds the fields of one listing row exactly as extracted, before
// year parsing and classification.
type RawRow struct {
	// Title is the trimmed text of the row's title link. Never empty.
	Title string

	// Href is the absolute link of the title, already resolved against the
	// base URL.
	Href string

	// YearText is the trimmed text of the year cell, or "" when missing.
	YearText string

	// VenueText is the trimmed venue line. Only meaningful when HasVenue is set.
	VenueText string
	HasVenue  bool
}

// Publication is one finalized entry of the generated block.
type Publication struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`

	// Year is nil when the listing showed no parsable year.
	Year *int `json:"year" yaml:"year"`

	// Venue is nil when the row had no venue line.
	Venue *string `json:"venue,omitempty" yaml:"venue,omitempty"`

	Kind    Kind `json:"type" yaml:"type"`
	Visible bool `json:"visible" yaml:"visible"`

	// Order is the zero-based position in the listing, used by the website
	// to break ties between papers of the same year.
	Order int `json:"order" yaml:"order"`
}
