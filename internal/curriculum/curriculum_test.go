package curriculum

import "testing"

func TestCatalogIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range Units() {
		if u.Name == "" || u.Title == "" {
			t.Errorf("unit %+v missing name or title", u)
		}
		if len(u.GrammarPoints) == 0 {
			t.Errorf("unit %s has no grammar points", u.Name)
		}
		for _, gp := range u.GrammarPoints {
			if seen[gp] {
				t.Errorf("grammar point %q appears in more than one unit", gp)
			}
			seen[gp] = true
		}
	}
}

func TestFindUnit(t *testing.T) {
	u, err := FindUnit("Unit-2")
	if err != nil {
		t.Fatalf("FindUnit: %v", err)
	}
	if u.Title != "Experiences and Results" {
		t.Errorf("Title = %q", u.Title)
	}

	if _, err := FindUnit("unit-99"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestCanonicalGrammarPoint(t *testing.T) {
	got, err := CanonicalGrammarPoint("  Present Perfect ")
	if err != nil {
		t.Fatalf("CanonicalGrammarPoint: %v", err)
	}
	if got != "present perfect" {
		t.Errorf("got %q, want catalog spelling", got)
	}

	if _, err := CanonicalGrammarPoint("klingon grammar"); err == nil {
		t.Error("expected error for unknown point")
	}
	if ValidGrammarPoint("klingon grammar") {
		t.Error("unknown point should not validate")
	}
	if !ValidGrammarPoint("passive voice") {
		t.Error("catalog point should validate")
	}
}

func TestAllGrammarPointsCoversEveryUnit(t *testing.T) {
	points := AllGrammarPoints()
	var total int
	for _, u := range Units() {
		total += len(u.GrammarPoints)
	}
	if len(points) != total {
		t.Errorf("AllGrammarPoints returned %d points, want %d", len(points), total)
	}
}
