package registry

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gorewood/stencil/internal/template"
)

// Rank orders search matches from strongest to weakest.
type Rank int

// Match ranks, strongest first.
const (
	RankExactName Rank = iota
	RankNameContains
	RankFieldContains
)

// Match pairs a matching template with the rank of its match.
type Match struct {
	Template *template.Template
	Rank     Rank
}

// Search returns templates whose name, description, labels, or category
// contain the query, case-insensitively.
//
// Matches are ranked: exact name match first, then name-contains, then
// description/label-contains. Ties break alphabetically by name.
// A blank query matches nothing.
func (r *Registry) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Match
	for _, name := range r.names {
		tmpl := r.byName[name]
		rank, ok := rankTemplate(tmpl, q)
		if !ok {
			continue
		}
		matches = append(matches, Match{Template: tmpl, Rank: rank})
	}

	// names is already alphabetical; a stable sort by rank preserves the
	// alphabetical tie-break within each rank.
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return matches
}

// rankTemplate reports whether tmpl matches the lowercased query and at
// which rank.
func rankTemplate(tmpl *template.Template, q string) (Rank, bool) {
	name := strings.ToLower(tmpl.Name)
	if name == q {
		return RankExactName, true
	}
	if strings.Contains(name, q) {
		return RankNameContains, true
	}
	if strings.Contains(strings.ToLower(tmpl.Description), q) {
		return RankFieldContains, true
	}
	if strings.Contains(strings.ToLower(tmpl.Category), q) {
		return RankFieldContains, true
	}
	for _, label := range tmpl.Labels {
		if strings.Contains(strings.ToLower(label), q) {
			return RankFieldContains, true
		}
	}
	return 0, false
}
