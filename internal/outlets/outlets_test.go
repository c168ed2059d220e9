package outlets

import "testing"

var knownCategories = map[string]bool{
	"politics":      true,
	"economy":       true,
	"sports":        true,
	"social":        true,
	"international": true,
	"culture-art":   true,
	"science-tech":  true,
}

func TestRegistryIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, o := range All() {
		if o.Slug == "" || o.AgencyNameEn == "" || o.BaseURL == "" {
			t.Fatalf("outlet %q missing identity fields", o.Slug)
		}
		if seen[o.Slug] {
			t.Fatalf("duplicate outlet slug %q", o.Slug)
		}
		seen[o.Slug] = true

		if o.ListSelector == "" {
			t.Errorf("outlet %q has no list selector", o.Slug)
		}
		if len(o.Title) == 0 {
			t.Errorf("outlet %q has no title rules", o.Slug)
		}
		if len(o.Categories) == 0 {
			t.Errorf("outlet %q has no categories", o.Slug)
		}

		catSeen := make(map[string]bool)
		for _, c := range o.Categories {
			if !knownCategories[c.Slug] {
				t.Errorf("outlet %q uses unknown category slug %q", o.Slug, c.Slug)
			}
			if catSeen[c.Slug] {
				t.Errorf("outlet %q repeats category %q", o.Slug, c.Slug)
			}
			catSeen[c.Slug] = true
			if c.Path == "" {
				t.Errorf("outlet %q category %q has no path", o.Slug, c.Slug)
			}
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 outlets, got %d", len(seen))
	}
}

func TestBySlug(t *testing.T) {
	o, ok := BySlug("tasnim")
	if !ok || o.AgencyNameEn != "Tasnim News Agency" {
		t.Fatalf("lookup tasnim: ok=%v outlet=%+v", ok, o)
	}
	if _, ok := BySlug("does-not-exist"); ok {
		t.Fatal("expected miss for unknown slug")
	}
}

func TestCategoryBySlug(t *testing.T) {
	o, _ := BySlug("mashreghnews")
	c, ok := o.CategoryBySlug("politics")
	if !ok {
		t.Fatal("mashreghnews should carry politics")
	}
	if c.ListSelector == "" {
		t.Fatal("mashreghnews politics should override the list selector")
	}
	if _, ok := o.CategoryBySlug("science-tech"); ok {
		t.Fatal("mashreghnews does not carry science-tech")
	}
}
