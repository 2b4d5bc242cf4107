package itembank

import "testing"

func TestDefaultBankShape(t *testing.T) {
	b := Default()
	if b.Len() != 93 {
		t.Fatalf("bank size = %d, want 93", b.Len())
	}

	wantCounts := map[Dichotomy]int{
		DichotomyEI: 21,
		DichotomySN: 26,
		DichotomyTF: 24,
		DichotomyJP: 22,
	}
	total := 0
	for d, want := range wantCounts {
		got := len(b.ByDichotomy(d))
		if got != want {
			t.Errorf("%s item count = %d, want %d", d, got, want)
		}
		total += got
	}
	if total != 93 {
		t.Errorf("dichotomy counts sum to %d, want 93", total)
	}
}

func TestDefaultBankItems(t *testing.T) {
	for _, it := range Default().Items() {
		if it.A <= 0 {
			t.Errorf("item %d: a = %g, want > 0", it.ID, it.A)
		}
		if it.OptionA.Positive == it.OptionB.Positive {
			t.Errorf("item %d: options must score opposite poles", it.ID)
		}
	}
}

func TestItemLookup(t *testing.T) {
	b := Default()

	it, err := b.Item(0)
	if err != nil {
		t.Fatalf("item 0: %v", err)
	}
	if it.Dichotomy != DichotomyEI {
		t.Errorf("item 0 dichotomy = %s, want E-I", it.Dichotomy)
	}

	if _, err := b.Item(93); err == nil {
		t.Error("expected error for out-of-range item id")
	}
}

func TestScoreDirection(t *testing.T) {
	b := Default()

	// Item 0: option A is the E (positive) choice.
	u, err := b.ScoreDirection(0, "A")
	if err != nil {
		t.Fatalf("score direction: %v", err)
	}
	if u != 1 {
		t.Errorf("item 0 choice A scored %d, want 1", u)
	}

	u, err = b.ScoreDirection(0, "B")
	if err != nil {
		t.Fatalf("score direction: %v", err)
	}
	if u != 0 {
		t.Errorf("item 0 choice B scored %d, want 0", u)
	}

	// Item 1: option B is the E choice (reverse-keyed).
	u, err = b.ScoreDirection(1, "B")
	if err != nil {
		t.Fatalf("score direction: %v", err)
	}
	if u != 1 {
		t.Errorf("item 1 choice B scored %d, want 1", u)
	}

	if _, err := b.ScoreDirection(0, "C"); err == nil {
		t.Error("expected error for unknown choice key")
	}
	if _, err := b.ScoreDirection(999, "A"); err == nil {
		t.Error("expected error for unknown item id")
	}
}

func TestTieBreakers(t *testing.T) {
	tests := []struct {
		d    Dichotomy
		high string
		low  string
	}{
		{DichotomyEI, "E", "I"},
		{DichotomySN, "S", "N"},
		{DichotomyTF, "T", "F"},
		{DichotomyJP, "J", "P"},
	}
	for _, tt := range tests {
		if got := tt.d.PositivePole(); got != tt.high {
			t.Errorf("%s positive pole = %s, want %s", tt.d, got, tt.high)
		}
		if got := tt.d.NegativePole(); got != tt.low {
			t.Errorf("%s negative pole = %s, want %s", tt.d, got, tt.low)
		}
		if got := tt.d.TieBreaker(); got != tt.low {
			t.Errorf("%s tie-breaker = %s, want %s", tt.d, got, tt.low)
		}
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	valid := func() []Item {
		return []Item{
			{ID: 0, Dichotomy: DichotomyEI, A: 1.0, Stem: "q",
				OptionA: Option{Key: "A", Text: "a", Positive: true},
				OptionB: Option{Key: "B", Text: "b"}},
			{ID: 1, Dichotomy: DichotomySN, A: 1.0, Stem: "q",
				OptionA: Option{Key: "A", Text: "a", Positive: true},
				OptionB: Option{Key: "B", Text: "b"}},
			{ID: 2, Dichotomy: DichotomyTF, A: 1.0, Stem: "q",
				OptionA: Option{Key: "A", Text: "a", Positive: true},
				OptionB: Option{Key: "B", Text: "b"}},
			{ID: 3, Dichotomy: DichotomyJP, A: 1.0, Stem: "q",
				OptionA: Option{Key: "A", Text: "a", Positive: true},
				OptionB: Option{Key: "B", Text: "b"}},
		}
	}

	if _, err := New(valid()); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func([]Item) []Item
	}{
		{"duplicate id", func(items []Item) []Item {
			items[1].ID = 0
			return items
		}},
		{"gap in ids", func(items []Item) []Item {
			items[3].ID = 7
			return items
		}},
		{"non-positive discrimination", func(items []Item) []Item {
			items[0].A = 0
			return items
		}},
		{"both options positive", func(items []Item) []Item {
			items[2].OptionB.Positive = true
			return items
		}},
		{"missing dichotomy", func(items []Item) []Item {
			items[3].Dichotomy = DichotomyEI
			return items
		}},
		{"unknown dichotomy", func(items []Item) []Item {
			items[0].Dichotomy = "X-Y"
			return items
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.mutate(valid())); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
