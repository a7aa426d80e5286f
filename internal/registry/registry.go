// Package registry holds the static label mappings that canonicalize raw
// spreadsheet values: activity categories, parties, states, election types,
// legislatures and committee types. The tables are configuration, not data;
// a Registry is immutable once built and shared freely across goroutines.
package registry

// Registry resolves raw free-text labels to canonical keys. Lookups are
// exact-match (case- and diacritic-sensitive); known spelling variants are
// pre-enumerated in the tables. A miss returns the label unchanged so
// unmapped data stays visible instead of being dropped.
type Registry struct {
	activities   map[string]string
	parties      map[string]string
	states       map[string]string
	elections    map[string]string
	legislatures map[string]string
	committees   map[string]string
}

// Default returns the built-in mapping tables.
func Default() *Registry {
	return &Registry{
		activities:   activityMapping,
		parties:      partyMapping,
		states:       stateMapping,
		elections:    electionMapping,
		legislatures: legislatureMapping,
		committees:   committeeMapping,
	}
}

// Overrides extends selected tables with extra alias→key pairs, typically
// sourced from the pipeline config. The receiver is not modified.
func (r *Registry) Overrides(activities, parties, states map[string]string) *Registry {
	out := &Registry{
		activities:   merge(r.activities, activities),
		parties:      merge(r.parties, parties),
		states:       merge(r.states, states),
		elections:    r.elections,
		legislatures: r.legislatures,
		committees:   r.committees,
	}
	return out
}

func merge(base, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Category canonicalizes a raw activity label from sheet3's tipo column.
// ok is false on a miss, in which case the label comes back unchanged.
func (r *Registry) Category(raw string) (key string, ok bool) {
	return lookup(r.activities, raw)
}

// Party maps a raw party label, passing unknown values through.
func (r *Registry) Party(raw string) string {
	v, _ := lookup(r.parties, raw)
	return v
}

// State maps a state name (with common accent and naming variants) to its
// short code, passing unknown values through.
func (r *Registry) State(raw string) string {
	v, _ := lookup(r.states, raw)
	return v
}

// ElectionType maps an election-type label to mr/rp, passing unknown values through.
func (r *Registry) ElectionType(raw string) string {
	v, _ := lookup(r.elections, raw)
	return v
}

// Legislature maps a roman-numeral legislature to its ordinal, passing
// unknown values through.
func (r *Registry) Legislature(raw string) string {
	v, _ := lookup(r.legislatures, raw)
	return v
}

// CommitteeType maps a raw committee type to its canonical lowercase key,
// passing unknown values through.
func (r *Registry) CommitteeType(raw string) string {
	v, _ := lookup(r.committees, raw)
	return v
}

func lookup(m map[string]string, raw string) (string, bool) {
	if v, ok := m[raw]; ok {
		return v, true
	}
	return raw, false
}
