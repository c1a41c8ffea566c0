// Package prefilter rejects lines that cannot contain any of a set of
// literals with a single Aho-Corasick pass.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string // distinct literals, first occurrence order
	always   bool     // an empty literal is contained in every line
}

// New creates a prefilter from literals. Repeated literals are kept once.
func New(literals []string) *Prefilter {
	pf := &Prefilter{}

	seen := make(map[string]bool)
	for _, lit := range literals {
		if lit == "" {
			pf.always = true
			continue
		}
		if !seen[lit] {
			seen[lit] = true
			pf.keywords = append(pf.keywords, lit)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}
	return pf
}

// MayContain reports whether line contains at least one literal. It is safe
// for concurrent use.
func (pf *Prefilter) MayContain(line string) bool {
	if pf.always {
		return true
	}
	if pf.matcher == nil {
		return false
	}
	return len(pf.matcher.MatchThreadSafe([]byte(line))) > 0
}

// Keywords returns the distinct literals searched for.
func (pf *Prefilter) Keywords() []string {
	return pf.keywords
}
