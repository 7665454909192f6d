package renderer

import (
	"strings"

	"github.com/samber/lo"

	"github.com/trufnetwork/confsync/internal/params"
)

type substitution struct {
	token string
	value string
}

// Replacer applies snapshot values to template text in a single pass, so a
// value that itself looks like a token is written out verbatim.
type Replacer struct {
	substitutions []substitution
	replacer      *strings.Replacer
}

// NewReplacer builds a Replacer from snapshot. When two records map to the
// same token, the first one in snapshot order wins.
func NewReplacer(snapshot params.Snapshot) *Replacer {
	r := &Replacer{substitutions: make([]substitution, 0, len(snapshot))}
	seen := make(map[string]struct{}, len(snapshot))
	pairs := make([]string, 0, 2*len(snapshot))
	for _, v := range snapshot {
		token := params.TokenForPath(v.Name)
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		r.substitutions = append(r.substitutions, substitution{token: token, value: v.Value})
		pairs = append(pairs, token, v.Value)
	}
	r.replacer = strings.NewReplacer(pairs...)
	return r
}

// Replace returns text with every known token replaced, the tokens of text
// that had a value (snapshot order), and the tokens of text that had none.
func (r *Replacer) Replace(text string) (rendered string, resolved, unresolved []string) {
	for _, s := range r.substitutions {
		if strings.Contains(text, s.token) {
			resolved = append(resolved, s.token)
		}
	}
	unresolved = lo.Without(lo.Uniq(params.TemplateTokens(text)), resolved...)
	return r.replacer.Replace(text), resolved, unresolved
}
