package entities

import "encoding/json"

// JSON keys of the persisted session
const (
	keyHeroName       = "hero_name"
	keySelectedPowers = "selected_powers"
	keySelectedTraits = "selected_traits"
)

// Record is the persisted shape of a session.
//
// SelectedTraits is nil for sessions that never carried traits; the key is
// then omitted on save so the file matches what the powers-only variant
// writes. Any other slice, empty included, is written.
type Record struct {
	HeroName       string
	SelectedPowers []string
	SelectedTraits []string
}

// MarshalJSON writes the record with the session file keys
func (r Record) MarshalJSON() ([]byte, error) {
	out := struct {
		HeroName       string    `json:"hero_name"`
		SelectedPowers []string  `json:"selected_powers"`
		SelectedTraits *[]string `json:"selected_traits,omitempty"`
	}{
		HeroName:       r.HeroName,
		SelectedPowers: nonNil(r.SelectedPowers),
	}
	if r.SelectedTraits != nil {
		traits := r.SelectedTraits
		out.SelectedTraits = &traits
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a session object. Missing keys and keys of the wrong
// type fall back to empty values; only input that is not a JSON object fails.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{SelectedPowers: []string{}}

	if v, ok := raw[keyHeroName]; ok {
		var name string
		if json.Unmarshal(v, &name) == nil {
			r.HeroName = name
		}
	}
	if v, ok := raw[keySelectedPowers]; ok {
		r.SelectedPowers = decodeNames(v)
	}
	if v, ok := raw[keySelectedTraits]; ok {
		r.SelectedTraits = decodeNames(v)
	}
	return nil
}

// decodeNames keeps the string items of a JSON array
func decodeNames(v json.RawMessage) []string {
	names := []string{}
	var items []interface{}
	if json.Unmarshal(v, &items) != nil {
		return names
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			names = append(names, s)
		}
	}
	return names
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
