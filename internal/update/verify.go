package update

import (
	"fmt"

	"github.com/vinit-katariya/scholar-sync/internal/scholar"
	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// Verify checks that pubs could have been produced by Run: non-empty, titled,
// ordered 0..n-1 in sequence, and visible exactly for the first featured
// entries.
func Verify(pubs []types.Publication, featured int) error {
	if len(pubs) == 0 {
		return scholar.ErrNoPublications
	}
	for i, p := range pubs {
		if p.Title == "" {
			return fmt.Errorf("entry %d has no title", i)
		}
		if p.Order != i {
			return fmt.Errorf("entry %d (%q) has order %d", i, p.Title, p.Order)
		}
		if want := i < featured; p.Visible != want {
			return fmt.Errorf("entry %d (%q) has visible=%t, want %t", i, p.Title, p.Visible, want)
		}
	}
	return nil
}
