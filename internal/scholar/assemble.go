package scholar

import (
	"errors"
	"iter"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// ErrNoPublications guards the data file against being overwritten with an
// empty list when the listing could not be parsed.
var ErrNoPublications = errors.New("no publications were parsed from the profile page")

// Assemble finalizes rows in order. The i-th row gets Order i and is
// Visible when i < featured.
func Assemble(rows iter.Seq[types.RawRow], featured int) ([]types.Publication, error) {
	var pubs []types.Publication
	i := 0
	for row := range rows {
		p := types.Publication{
			Title:   row.Title,
			URL:     row.Href,
			Year:    ParseYear(row.YearText),
			Visible: i < featured,
			Order:   i,
		}
		if row.HasVenue && row.VenueText != "" {
			venue := row.VenueText
			p.Venue = &venue
		}
		p.Kind = Classify(p.Venue)

		pubs = append(pubs, p)
		i++
	}

	if len(pubs) == 0 {
		return nil, ErrNoPublications
	}
	return pubs, nil
}
