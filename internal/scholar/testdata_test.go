// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"strings"
)

const testBaseURL = "https://scholar.google.com"

// fixtureRow describes one table row of a synthetic profile page.
type fixtureRow struct {
	title   string
	href    string
	noHref  bool
	noTitle bool
	authors string
	venue   string
	noVenue bool
	year    string
}

// profilePage renders rows using the same markup landmarks as the real
// profile listing.
func profilePage(rows ...fixtureRow) string {
	var b strings.Builder
	b.WriteString(`<html><body><table id="gsc_a_t"><tbody id="gsc_a_b">`)
	for _, r := range rows {
		b.WriteString(`<tr class="gsc_a_tr"><td class="gsc_a_t">`)
		if !r.noTitle {
			if r.noHref {
				fmt.Fprintf(&b, `<a class="gsc_a_at">%s</a>`, r.title)
			} else {
				fmt.Fprintf(&b, `<a href="%s" class="gsc_a_at">%s</a>`, r.href, r.title)
			}
		}
		fmt.Fprintf(&b, `<div class="gs_gray">%s</div>`, r.authors)
		if !r.noVenue {
			fmt.Fprintf(&b, `<div class="gs_gray">%s<span class="gs_oph">, 2023</span></div>`, r.venue)
		}
		b.WriteString(`</td><td class="gsc_a_c"><a class="gsc_a_ac gs_ibl">12</a></td>`)
		fmt.Fprintf(&b, `<td class="gsc_a_y"><span class="gsc_a_h gsc_a_hc gs_ibl">%s</span></td>`, r.year)
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}
