package update

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinit-katariya/scholar-sync/internal/scholar"
	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

func TestVerify(t *testing.T) {
	good := []types.Publication{
		{Title: "A", Visible: true, Order: 0},
		{Title: "B", Visible: true, Order: 1},
		{Title: "C", Visible: false, Order: 2},
	}
	assert.NoError(t, Verify(good, 2))

	assert.ErrorIs(t, Verify(nil, 6), scholar.ErrNoPublications)

	gap := []types.Publication{{Title: "A", Visible: true, Order: 0}, {Title: "B", Visible: true, Order: 2}}
	assert.ErrorContains(t, Verify(gap, 6), "has order 2")

	hidden := []types.Publication{{Title: "A", Visible: false, Order: 0}}
	assert.ErrorContains(t, Verify(hidden, 6), "visible=false")

	untitled := []types.Publication{{Visible: true}}
	assert.ErrorContains(t, Verify(untitled, 6), "no title")
}
