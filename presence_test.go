package skemalab_test

import (
	"testing"

	"github.com/reoring/skemalab"
)

func TestPresenceMap_Merge(t *testing.T) {
	pm := skemalab.PresenceMap{}
	pm.Merge("/home", skemalab.PresenceMap{"/": skemalab.PresenceSeen, "/city": skemalab.PresenceSeen | skemalab.PresenceWasNull})
	if !pm.Has("/home", skemalab.PresenceSeen) || !pm.Has("/home/city", skemalab.PresenceWasNull) {
		t.Fatalf("merge: %v", pm)
	}

	var nilMap skemalab.PresenceMap
	out := nilMap.Merge("", skemalab.RootSeen())
	if !out.Has("/", skemalab.PresenceSeen) {
		t.Fatalf("merge into nil: %v", out)
	}
}

func TestMarkSubtree(t *testing.T) {
	pm := skemalab.PresenceMap{}
	skemalab.MarkSubtree(pm, "/extra", map[string]any{"x": nil, "y": []any{"a"}})
	for _, p := range []string{"/extra", "/extra/x", "/extra/y", "/extra/y/0"} {
		if !pm.Has(p, skemalab.PresenceSeen) {
			t.Fatalf("missing %s in %v", p, pm)
		}
	}
	if !pm.Has("/extra/x", skemalab.PresenceWasNull) || pm.Has("/extra/y", skemalab.PresenceWasNull) {
		t.Fatalf("null flags: %v", pm)
	}
}
