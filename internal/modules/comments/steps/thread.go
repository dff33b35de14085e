package steps

import (
	"strings"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
)

// ResolveThread returns the ancestor chain ending at targetID, root first.
// A missing ancestor ends the chain early. The walk is capped at len(comments)
// hops; truncated reports that the cap was hit, which only happens on a
// parent cycle.
func ResolveThread(comments []types.Comment, targetID string) (chain []types.Comment, truncated bool) {
	if targetID == "" || len(comments) == 0 {
		return nil, false
	}
	byID := make(map[string]int, len(comments))
	for i := range comments {
		if _, dup := byID[comments[i].ID]; !dup {
			byID[comments[i].ID] = i
		}
	}

	idx, ok := byID[targetID]
	if !ok {
		return nil, false
	}
	for hops := 0; ; hops++ {
		if hops >= len(comments) {
			truncated = true
			break
		}
		cur := comments[idx]
		chain = append(chain, cur)
		if cur.ParentID == "" {
			break
		}
		next, ok := byID[cur.ParentID]
		if !ok {
			break
		}
		idx = next
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, truncated
}

// BuildThreadContext renders the chain ending at targetID as
// "{name}: {content}" entries separated by a blank line. Unknown persona ids
// print verbatim; an unknown target yields "".
func BuildThreadContext(comments []types.Comment, targetID string, names map[string]string) string {
	chain, _ := ResolveThread(comments, targetID)
	return renderThread(chain, names)
}

func renderThread(chain []types.Comment, names map[string]string) string {
	if len(chain) == 0 {
		return ""
	}
	parts := make([]string, 0, len(chain))
	for _, c := range chain {
		name := names[c.PersonaID]
		if name == "" {
			name = c.PersonaID
		}
		parts = append(parts, name+": "+c.Content)
	}
	return strings.Join(parts, "\n\n")
}
