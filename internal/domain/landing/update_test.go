package landing

import (
	"errors"
	"testing"
)

func TestUpdateSectionFieldSharesSiblings(t *testing.T) {
	c := DefaultContent()

	c2, err := UpdateSectionField(c, SectionHero, "title", "X")
	if err != nil {
		t.Fatal(err)
	}

	if c2.Hero.Title != "X" {
		t.Errorf("hero title = %q, want X", c2.Hero.Title)
	}
	if c.Hero.Title == "X" {
		t.Error("input content was mutated")
	}
	if c2.Hero == c.Hero {
		t.Error("updated section should be a new object")
	}
	if c2.Features != c.Features {
		t.Error("features section should be reference-identical")
	}
	if c2.Instructor != c.Instructor || c2.Testimonials != c.Testimonials ||
		c2.Pricing != c.Pricing || c2.Contact != c.Contact {
		t.Error("untouched sections should be reference-identical")
	}
}

func TestUpdateSectionFieldUnknowns(t *testing.T) {
	c := DefaultContent()

	if _, err := UpdateSectionField(c, "footer", "title", "x"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("unknown section: got %v, want ErrUnknownSection", err)
	}
	if _, err := UpdateSectionField(c, SectionHero, "color", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field: got %v, want ErrUnknownField", err)
	}
	if _, err := UpdateSectionField(c, SectionHero, "title", 7); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("wrong value type: got %v, want ErrInvalidValue", err)
	}
}

func emptyFeatures() Content {
	c := DefaultContent()
	out, err := UpdateSectionField(c, SectionFeatures, "items", []FeatureItem{})
	if err != nil {
		panic(err)
	}
	return out
}

func TestAddFeatureRejectsEmpty(t *testing.T) {
	c := DefaultContent()
	before := len(c.Features.Items)

	cases := []struct{ title, desc string }{
		{"", "valid"},
		{"valid", ""},
		{"   ", "valid"},
		{"valid", "\t\n"},
	}
	for _, tc := range cases {
		out, err := AddFeature(c, tc.title, tc.desc)
		if !errors.Is(err, ErrEmptyFeatureField) {
			t.Errorf("AddFeature(%q, %q): got %v, want ErrEmptyFeatureField", tc.title, tc.desc, err)
		}
		if len(out.Features.Items) != before {
			t.Errorf("AddFeature(%q, %q) changed list length", tc.title, tc.desc)
		}
	}
}

func TestAddFeatureAppendsWithOrder(t *testing.T) {
	c := emptyFeatures()

	var err error
	for _, title := range []string{"one", "two", "three"} {
		c, err = AddFeature(c, title, "desc for "+title)
		if err != nil {
			t.Fatal(err)
		}
	}

	items := c.Features.Items
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	seen := map[string]bool{}
	for i, it := range items {
		if it.Order != i {
			t.Errorf("item %d has order %d", i, it.Order)
		}
		if it.ID == "" || seen[it.ID] {
			t.Errorf("item %d has missing or duplicate id %q", i, it.ID)
		}
		seen[it.ID] = true
	}
	if items[0].Title != "one" || items[1].Title != "two" || items[2].Title != "three" {
		t.Errorf("insertion order not preserved: %+v", items)
	}
}

func TestAddFeatureTrimsInput(t *testing.T) {
	c := emptyFeatures()
	c, err := AddFeature(c, "  Spaced  ", "  desc  ")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Features.Items[0].Title; got != "Spaced" {
		t.Errorf("title = %q, want trimmed", got)
	}
	if got := c.Features.Items[0].Description; got != "desc" {
		t.Errorf("description = %q, want trimmed", got)
	}
}

func TestDeleteFeatureUnknownIDIsNoop(t *testing.T) {
	c := DefaultContent()
	before := c.Features

	out := DeleteFeature(c, "does-not-exist")
	if out.Features != before {
		t.Error("deleting an unknown id should leave the section untouched")
	}
	if len(out.Features.Items) != len(before.Items) {
		t.Error("list length changed")
	}
}

func TestDeleteFeatureKeepsOrderValues(t *testing.T) {
	c := emptyFeatures()
	var err error
	for _, title := range []string{"a", "b", "c"} {
		c, err = AddFeature(c, title, "d")
		if err != nil {
			t.Fatal(err)
		}
	}

	c = DeleteFeature(c, c.Features.Items[1].ID)

	items := c.Features.Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// No renumbering: surviving orders keep their values.
	if items[0].Order != 0 || items[1].Order != 2 {
		t.Errorf("orders = %d, %d, want 0, 2", items[0].Order, items[1].Order)
	}

	// A later add must not collide with the surviving orders.
	c, err = AddFeature(c, "d", "d")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Features.Items[2].Order; got != 3 {
		t.Errorf("order after delete+add = %d, want 3", got)
	}
}

func TestReorderFeatures(t *testing.T) {
	c := emptyFeatures()
	var err error
	for _, title := range []string{"a", "b", "c"} {
		c, err = AddFeature(c, title, "d")
		if err != nil {
			t.Fatal(err)
		}
	}
	ids := []string{c.Features.Items[2].ID, c.Features.Items[0].ID, c.Features.Items[1].ID}

	c, err = ReorderFeatures(c, ids)
	if err != nil {
		t.Fatal(err)
	}

	items := c.Features.Items
	if items[0].Title != "c" || items[1].Title != "a" || items[2].Title != "b" {
		t.Errorf("reorder sequence wrong: %+v", items)
	}
	for i, it := range items {
		if it.Order != i {
			t.Errorf("item %d order = %d after reorder", i, it.Order)
		}
	}
}

func TestReorderFeaturesRejectsBadIDs(t *testing.T) {
	c := emptyFeatures()
	c, _ = AddFeature(c, "a", "d")
	c, _ = AddFeature(c, "b", "d")

	if _, err := ReorderFeatures(c, []string{c.Features.Items[0].ID}); !errors.Is(err, ErrBadReorder) {
		t.Errorf("short id list: got %v, want ErrBadReorder", err)
	}
	if _, err := ReorderFeatures(c, []string{c.Features.Items[0].ID, "bogus"}); !errors.Is(err, ErrBadReorder) {
		t.Errorf("foreign id: got %v, want ErrBadReorder", err)
	}
	dup := c.Features.Items[0].ID
	if _, err := ReorderFeatures(c, []string{dup, dup}); !errors.Is(err, ErrBadReorder) {
		t.Errorf("duplicate id: got %v, want ErrBadReorder", err)
	}
}

func TestAddTestimonialClampsRating(t *testing.T) {
	c := DefaultContent()

	c, err := AddTestimonial(c, "Pat", "Student", "", "Great course", 9)
	if err != nil {
		t.Fatal(err)
	}
	items := c.Testimonials.Items
	if got := items[len(items)-1].Rating; got != 5 {
		t.Errorf("rating = %d, want clamped to 5", got)
	}

	c, err = AddTestimonial(c, "Sky", "Student", "", "Loved it", -3)
	if err != nil {
		t.Fatal(err)
	}
	items = c.Testimonials.Items
	if got := items[len(items)-1].Rating; got != 1 {
		t.Errorf("rating = %d, want clamped to 1", got)
	}
}
