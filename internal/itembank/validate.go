package itembank

import (
	"fmt"
	"strings"
)

// validateItems performs all structural checks on the item table.
// Returns a combined error describing all problems found, or nil if valid.
func validateItems(items []Item) error {
	var errs []string

	known := map[Dichotomy]bool{
		DichotomyEI: true,
		DichotomySN: true,
		DichotomyTF: true,
		DichotomyJP: true,
	}

	idSet := make(map[int]bool, len(items))
	populated := make(map[Dichotomy]bool)

	for _, it := range items {
		if idSet[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item id: %d", it.ID))
		}
		idSet[it.ID] = true

		if !known[it.Dichotomy] {
			errs = append(errs, fmt.Sprintf("item %d: unknown dichotomy %q", it.ID, it.Dichotomy))
		}
		populated[it.Dichotomy] = true

		if it.A <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: discrimination must be > 0, got %g", it.ID, it.A))
		}
		if it.Stem == "" {
			errs = append(errs, fmt.Sprintf("item %d: empty stem", it.ID))
		}
		if it.OptionA.Key == it.OptionB.Key {
			errs = append(errs, fmt.Sprintf("item %d: options share key %q", it.ID, it.OptionA.Key))
		}
		if it.OptionA.Positive == it.OptionB.Positive {
			errs = append(errs, fmt.Sprintf("item %d: exactly one option must be the positive pole", it.ID))
		}
	}

	// Ids must be contiguous from 0: the answer surfaces address items
	// by position, so a gap means the table and catalogue drifted apart.
	for id := range len(items) {
		if !idSet[id] {
			errs = append(errs, fmt.Sprintf("missing item id: %d", id))
		}
	}

	// The four dichotomies partition the table: each must be non-empty.
	for _, d := range AllDichotomies() {
		if !populated[d] {
			errs = append(errs, fmt.Sprintf("dichotomy %q has no items", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("item table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
