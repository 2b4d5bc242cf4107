package itembank

import (
	"fmt"
	"slices"
)

// Bank holds the item parameter table with its precomputed dichotomy
// index. Built once, read-only thereafter; safe for concurrent use.
type Bank struct {
	items       []Item
	byID        map[int]*Item
	byDichotomy map[Dichotomy][]Item
}

// bank is the package-level singleton, set by init() in seed.go.
var bank *Bank

// New constructs a Bank from a slice of items, validating the table
// and building the dichotomy index.
func New(items []Item) (*Bank, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	b := &Bank{
		items:       slices.Clone(items),
		byID:        make(map[int]*Item, len(items)),
		byDichotomy: make(map[Dichotomy][]Item),
	}

	for i := range b.items {
		b.byID[b.items[i].ID] = &b.items[i]
	}

	// Group by dichotomy, preserving id order within each group.
	for _, d := range AllDichotomies() {
		var group []Item
		for i := range b.items {
			if b.items[i].Dichotomy == d {
				group = append(group, b.items[i])
			}
		}
		slices.SortFunc(group, func(a, b Item) int { return a.ID - b.ID })
		b.byDichotomy[d] = group
	}

	return b, nil
}

// Default returns the built-in 93-item bank.
func Default() *Bank {
	return bank
}

// Items returns all items in id order.
func (b *Bank) Items() []Item {
	return slices.Clone(b.items)
}

// Len returns the number of items in the bank.
func (b *Bank) Len() int {
	return len(b.items)
}

// Item returns the item with the given 0-based id.
func (b *Bank) Item(id int) (Item, error) {
	it, ok := b.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("item not found: %d", id)
	}
	return *it, nil
}

// ByDichotomy returns the ordered items belonging to a dichotomy.
// An unknown dichotomy yields an empty set, not an error.
func (b *Bank) ByDichotomy(d Dichotomy) []Item {
	return slices.Clone(b.byDichotomy[d])
}

// ScoreDirection resolves a respondent's choice on an item to its
// scored direction (1 = positive pole, 0 = negative pole). An unknown
// item id or choice key means the table and the answer surface are out
// of lockstep, which is a configuration error.
func (b *Bank) ScoreDirection(itemID int, choiceKey string) (int, error) {
	it, ok := b.byID[itemID]
	if !ok {
		return 0, fmt.Errorf("score direction: item not found: %d", itemID)
	}
	u, ok := it.ScoreKey(choiceKey)
	if !ok {
		return 0, fmt.Errorf("score direction: item %d has no option %q", itemID, choiceKey)
	}
	return u, nil
}
