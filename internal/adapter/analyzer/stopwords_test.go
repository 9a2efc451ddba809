package analyzer

import "testing"

func TestStopwordManager_BaselineAndExtra(t *testing.T) {
	m := NewStopwordManager(true, []string{"Cat", "CATS"})

	for _, w := range []string{"the", "and", "cat", "cats"} {
		if !m.Effective().Contains(w) {
			t.Errorf("expected %q in effective set", w)
		}
	}
	if m.Effective().Contains("Cat") {
		t.Error("extra stopwords should be lowercased when lowercase is enabled")
	}
	if m.Len() != len(baselineStopwords)+2 {
		t.Errorf("expected %d stopwords, got %d", len(baselineStopwords)+2, m.Len())
	}
}

func TestStopwordManager_KeepsCaseWithoutLowercase(t *testing.T) {
	m := NewStopwordManager(false, []string{"Whiskers"})

	if !m.Effective().Contains("Whiskers") {
		t.Error("expected extra word in supplied case")
	}
	if m.Effective().Contains("whiskers") {
		t.Error("did not expect case-folded extra word")
	}
	if !m.Effective().Contains("the") {
		t.Error("expected baseline word in its stored case")
	}
}

func TestStopwordManager_AddMonotonicAndIdempotent(t *testing.T) {
	m := NewStopwordManager(true, nil)
	size := m.Len()

	m.Add("Purr", "meow")
	if m.Len() != size+2 {
		t.Fatalf("expected size %d after add, got %d", size+2, m.Len())
	}
	if !m.Effective().Contains("purr") {
		t.Error("expected added word to be lowercased")
	}

	size = m.Len()
	m.Add("purr", "MEOW")
	if m.Len() != size {
		t.Errorf("re-adding words changed size from %d to %d", size, m.Len())
	}

	m.Add("the")
	if m.Len() != size {
		t.Errorf("adding a baseline word changed size from %d to %d", size, m.Len())
	}
}

func TestStopwordManager_AddSkipsBlank(t *testing.T) {
	m := NewStopwordManager(true, nil)
	size := m.Len()

	m.Add("", "   ")
	if m.Len() != size {
		t.Errorf("blank words should be ignored, size %d -> %d", size, m.Len())
	}
}

func TestStopwordManager_EffectiveIsRebuilt(t *testing.T) {
	m := NewStopwordManager(true, nil)
	before := m.Effective()

	m.Add("whisker")
	if before.Contains("whisker") {
		t.Error("previous effective view should not be patched in place")
	}
	if !m.Effective().Contains("whisker") {
		t.Error("new effective view should contain the added word")
	}
}

func TestStopwordSet_Sorted(t *testing.T) {
	got := NewStopwordSet("b", "c", "a").Sorted()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("unexpected order: %v", got)
	}
}
