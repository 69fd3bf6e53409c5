package extract

import "regexp"

// Shared regex atoms. Every text-grammar extractor factors its line
// grammar into the same four pieces — date head, description body,
// amount tail, optional suffix — rather than each issuer hand-rolling six
// overlapping patterns; these atoms are the building blocks for that
// factoring, not the grammars themselves (those live in each issuer's own
// file since the column order and suffix rules genuinely differ).
const (
	reDateDDMMYYYY     = `\d{2}/\d{2}/\d{4}`
	reDateDDMMYYYYDash = `\d{2}-\d{2}-\d{4}`
	reDateDDMonYY      = `\d{1,2}\s+[A-Za-z]{3}\s+\d{2}`
	reAmount           = `[0-9,]+\.\d{2}`
	reAmountOptFrac    = `[0-9,]+(?:\.\d{1,2})?`
	reCrDr             = `CR|DR`
	reCOrD             = `C|D`
	reSerialNo         = `\d+`
)

// tryPatterns returns the submatches of the first pattern in order that
// matches line, or nil if none match. The ICICI CC text path dispatches
// its priority-ordered regex list through this; the savings-account
// generic text extractor keeps its own loop because it needs the index of
// the pattern that matched.
func tryPatterns(line string, patterns []*regexp.Regexp) (matched *regexp.Regexp, groups []string) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return p, m
		}
	}
	return nil, nil
}
