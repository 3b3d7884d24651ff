package classify

import "testing"

func TestIDPureFunctionOfName(t *testing.T) {
	a := NewCategory("Greek", NewRange(0x0370, 0x03FF))
	b := NewCategory("Greek", NewSet('α'))
	if a.ID() != b.ID() {
		t.Error("categories sharing a name must share an id")
	}
	if a.ID() == NewCategory("Cyrillic", NewSet()).ID() {
		t.Error("distinct names should yield distinct ids")
	}
	if IDForName("Greek") != a.ID() {
		t.Error("ID() should equal IDForName(Name())")
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(
		NewCategory("Arrows", NewRange(0x2190, 0x21FF)),
		NewCategory("Box Drawing", NewRange(0x2500, 0x257F)),
	)
	c, ok := reg.ByID(IDForName("Arrows"))
	if !ok || c.Name() != "Arrows" {
		t.Fatalf("ByID(Arrows) = %q, %v", c.Name(), ok)
	}
	if _, ok := reg.ByID(IDForName("Nope")); ok {
		t.Error("ByID(unknown) = true, want false")
	}
	if _, ok := reg.ByName("Box Drawing"); !ok {
		t.Error("ByName(Box Drawing) = false, want true")
	}
}

func TestApplyOrder(t *testing.T) {
	reg := NewRegistry(
		NewCategory("A", NewSet()),
		NewCategory("B", NewSet()),
		NewCategory("C", NewSet()),
	)
	reg.ApplyOrder([]CategoryID{
		IDForName("C"),
		IDForName("Z"), // stale persisted id, ignored
		IDForName("A"),
		IDForName("C"), // duplicate, ignored
	})
	got := reg.All()
	want := []string{"C", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("All()[%d] = %q, want %q", i, got[i].Name(), name)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	if len(reg.All()) == 0 {
		t.Fatal("default registry is empty")
	}
	greek, ok := reg.ByName("Greek and Coptic")
	if !ok {
		t.Fatal("default registry lacks Greek and Coptic")
	}
	if !greek.Classifier().Contains('α') {
		t.Error("Greek and Coptic should contain α")
	}
	if greek.Classifier().Contains('a') {
		t.Error("Greek and Coptic should not contain a")
	}
	emoji, ok := reg.ByName("Emoji")
	if !ok {
		t.Fatal("default registry lacks Emoji")
	}
	if !emoji.Classifier().Contains(0x1F600) {
		t.Error("Emoji should contain U+1F600")
	}
}
