package core

// stepmatch.go associates utility requirement rows with recipe steps by name.
//
// Step names are human-authored and carry prefixes and suffixes ("Step 3:
// Sterilization" vs the hint "Sterilization"), so the match is substring
// containment, case-insensitive. When several steps contain the hint the
// shortest name wins (a longer name containing the hint usually embeds it in
// more unrelated context), with list order breaking exact ties; multi-matches
// are surfaced to the caller so they can be logged as ambiguities instead of
// silently taking the first index.

import "strings"

// matchStep returns the index of the best matching step and the total number
// of steps whose name contains hint. Returns index -1 when nothing matches
// or the hint is empty. Pure.
func matchStep(steps []RecipeStep, hint string) (best, matches int) {
	best = -1
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return best, 0
	}

	for i, step := range steps {
		if !strings.Contains(strings.ToLower(step.Name), hint) {
			continue
		}
		matches++
		if best < 0 || len(step.Name) < len(steps[best].Name) {
			best = i
		}
	}
	return best, matches
}
