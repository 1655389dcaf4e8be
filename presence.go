package skemalab

import "strconv"

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the parsed value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Has reports whether every bit in flag is set for path.
func (pm PresenceMap) Has(path string, flag Presence) bool {
	return pm[path]&flag == flag
}

// Merge ORs other into pm under the base pointer and returns pm.
func (pm PresenceMap) Merge(base string, other PresenceMap) PresenceMap {
	if pm == nil {
		pm = PresenceMap{}
	}
	for k, v := range other {
		p := base + k
		if k == "/" {
			p = base
		}
		if p == "" {
			p = "/"
		}
		pm[p] |= v
	}
	return pm
}

// RootSeen is the presence map for a scalar that was parsed successfully.
func RootSeen() PresenceMap { return PresenceMap{"/": PresenceSeen} }

// MarkSubtree records presence bits for a decoded value subtree under base.
func MarkSubtree(pm PresenceMap, base string, v any) {
	if pm == nil {
		return
	}
	key, prefix := base, base
	if base == "" || base == "/" {
		key, prefix = "/", ""
	}
	pm[key] |= PresenceSeen
	switch t := v.(type) {
	case nil:
		pm[key] |= PresenceWasNull
	case map[string]any:
		for k, val := range t {
			MarkSubtree(pm, prefix+"/"+k, val)
		}
	case []any:
		for i, val := range t {
			MarkSubtree(pm, prefix+"/"+strconv.Itoa(i), val)
		}
	}
}
