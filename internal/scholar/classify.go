package scholar

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// kindRules are checked in order; the first rule with a matching keyword wins.
var kindRules = []struct {
	kind     types.Kind
	keywords []string
}{
	{types.KindPreprint, []string{"arxiv", "preprint"}},
	{types.KindConference, []string{"proc.", "conference", "symposium", "workshop", "workshops"}},
	{types.KindJournal, []string{"journal", "trans.", "transactions", "letters", "ieee", "nature", "science"}},
}

// Classify maps a venue line to the badge shown on the website. A nil or
// blank venue, or one matching no rule, is an article.
func Classify(venue *string) types.Kind {
	if venue == nil || *venue == "" {
		return types.KindArticle
	}
	folded := cases.Fold().String(*venue)
	for _, rule := range kindRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.kind
			}
		}
	}
	return types.KindArticle
}
