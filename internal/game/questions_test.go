package game

import "testing"

func TestNextKeepsLeadingOptions(t *testing.T) {
	bank := NewBank([]Template{{
		Text:         "Which is the largest ocean on Earth?",
		Options:      []string{"Atlantic", "Pacific", "Indian", "Arctic"},
		CorrectIndex: 1,
	}})

	q := bank.Next(&scriptRand{}, 50, 2)
	if len(q.Options) != 2 {
		t.Fatalf("option count = %d, want 2", len(q.Options))
	}
	if q.Options[0] != "Atlantic" || q.Options[1] != "Pacific" {
		t.Errorf("options = %v, want the first two in original order", q.Options)
	}
	if q.CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1 (unchanged, still in range)", q.CorrectIndex)
	}
	if q.Points != 50 {
		t.Errorf("points = %d, want caller-supplied 50", q.Points)
	}
}

func TestNextRemapsTrimmedCorrectOption(t *testing.T) {
	bank := NewBank([]Template{{
		Text:         "Which planet is the largest?",
		Options:      []string{"Mars", "Venus", "Jupiter", "Saturn"},
		CorrectIndex: 2,
	}})

	q := bank.Next(&scriptRand{}, 10, 2)
	if q.CorrectIndex != 0 {
		t.Fatalf("correct index = %d, want remapped 0", q.CorrectIndex)
	}
	// The remap pulls the correct option into slot 0 rather than leaving
	// a wrong answer labeled correct.
	if q.Options[0] != "Jupiter" {
		t.Errorf("options[0] = %q, want the correct option Jupiter", q.Options[0])
	}
	if q.Options[1] != "Venus" {
		t.Errorf("options[1] = %q, want Venus", q.Options[1])
	}
}

func TestNextPicksUniformly(t *testing.T) {
	bank := NewBank(nil)
	if bank.Size() != 10 {
		t.Fatalf("built-in pool size = %d, want 10", bank.Size())
	}

	// The scripted draw selects the template directly.
	q := bank.Next(&scriptRand{ints: []int{3}}, 20, 4)
	if q.Text != DefaultTemplates()[3].Text {
		t.Errorf("picked %q, want template 3", q.Text)
	}
}

func TestDefaultTemplatesFitMinimumOptionCount(t *testing.T) {
	for i, tpl := range DefaultTemplates() {
		if len(tpl.Options) != 4 {
			t.Errorf("template %d has %d options, want 4", i, len(tpl.Options))
		}
		if tpl.CorrectIndex < 0 || tpl.CorrectIndex >= len(tpl.Options) {
			t.Errorf("template %d correct index %d out of range", i, tpl.CorrectIndex)
		}
		// Curated so even the two-option game keeps the real answer
		// visible without the remap.
		if tpl.CorrectIndex >= 2 {
			t.Errorf("template %d correct index %d would need remapping at two options", i, tpl.CorrectIndex)
		}
	}
}
