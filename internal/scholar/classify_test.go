package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		venue *string
		want  types.Kind
	}{
		{"no venue", nil, types.KindArticle},
		{"empty venue", strPtr(""), types.KindArticle},
		{"arxiv id", strPtr("arXiv:2301.00001"), types.KindPreprint},
		{"preprint wording", strPtr("bioRxiv Preprint"), types.KindPreprint},
		{"proceedings", strPtr("Proc. IEEE Conf. on X"), types.KindConference},
		{"symposium", strPtr("ACM Symposium on Edge Computing"), types.KindConference},
		{"workshop", strPtr("CVPR Workshops"), types.KindConference},
		{"transactions", strPtr("IEEE Transactions on Y"), types.KindJournal},
		{"letters", strPtr("Pattern Recognition Letters"), types.KindJournal},
		{"nature", strPtr("NATURE Communications"), types.KindJournal},
		{"unknown", strPtr("Random Venue Z"), types.KindArticle},
		// Earlier rules win over later ones.
		{"preprint beats journal", strPtr("arXiv preprint, IEEE"), types.KindPreprint},
		{"conference beats ieee", strPtr("2023 IEEE Conference on Vision"), types.KindConference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.venue))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	v := strPtr("Journal of Things")
	first := Classify(v)
	for range 10 {
		assert.Equal(t, first, Classify(v))
	}
}
