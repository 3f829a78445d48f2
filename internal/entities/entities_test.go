package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smkun/MarvelPowers/internal/entities"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		input    string
		expected entities.Category
		ok       bool
	}{
		{"power", entities.CategoryPower, true},
		{"Powers", entities.CategoryPower, true},
		{" trait ", entities.CategoryTrait, true},
		{"traits", entities.CategoryTrait, true},
		{"feat", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := entities.ParseCategory(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEntryFields(t *testing.T) {
	entry := &entities.Entry{
		Name:     "Fireball",
		Category: entities.CategoryPower,
		Fields: []entities.Field{
			{Name: "Name", Value: "Fireball"},
			{Name: "PowerSet", Value: "Fire, Arcane"},
			{Name: "Cost", Value: ""},
		},
	}

	v, ok := entry.Get("PowerSet")
	assert.True(t, ok)
	assert.Equal(t, "Fire, Arcane", v)

	_, ok = entry.Get("Range")
	assert.False(t, ok)

	assert.Equal(t, "N/A", entry.Value("Range", "N/A"))
	assert.Equal(t, "N/A", entry.Value("Cost", "N/A"), "empty element falls back")
	assert.Equal(t, []string{"Fire", "Arcane"}, entry.Groups())
	assert.True(t, entry.InGroup("Fire"))
	assert.False(t, entry.InGroup("Fir"))
	assert.False(t, entry.InGroup("Ice"))
}

func TestSplitGroups(t *testing.T) {
	assert.Equal(t, []string{"Fire", "Arcane"}, entities.SplitGroups("Fire, Arcane"))
	assert.Equal(t, []string{"Fire", "Arcane"}, entities.SplitGroups("Fire,Arcane"))
	assert.Equal(t, []string{"Fire"}, entities.SplitGroups(" Fire , , "))
	assert.Empty(t, entities.SplitGroups(""))
}

func TestRefIsEntityLike(t *testing.T) {
	ref := entities.Ref{Name: "Flight", Category: entities.CategoryPower}
	assert.Equal(t, "Flight", ref.GetID())
	assert.Equal(t, "power", ref.GetType())
}

func TestRecordRoundTrip(t *testing.T) {
	original := entities.Record{
		HeroName:       "Thor",
		SelectedPowers: []string{"Lightning Bolt", "Flight"},
		SelectedTraits: []string{"Asgardian"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded entities.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestRecordOmitsTraitsWhenNil(t *testing.T) {
	data, err := json.Marshal(entities.Record{HeroName: "Thor"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hero_name":"Thor","selected_powers":[]}`, string(data))

	data, err = json.Marshal(entities.Record{HeroName: "Thor", SelectedTraits: []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hero_name":"Thor","selected_powers":[],"selected_traits":[]}`, string(data))
}

func TestRecordToleratesMissingAndMistypedKeys(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected entities.Record
	}{
		{
			name:     "empty object",
			input:    `{}`,
			expected: entities.Record{SelectedPowers: []string{}},
		},
		{
			name:     "powers only file",
			input:    `{"hero_name":"Storm","selected_powers":["Weather Control"]}`,
			expected: entities.Record{HeroName: "Storm", SelectedPowers: []string{"Weather Control"}},
		},
		{
			name:  "wrong types",
			input: `{"hero_name":42,"selected_powers":"Flight","selected_traits":["Brave",7,null]}`,
			expected: entities.Record{
				SelectedPowers: []string{},
				SelectedTraits: []string{"Brave"},
			},
		},
		{
			name:     "unknown keys ignored",
			input:    `{"hero_name":"Logan","version":3}`,
			expected: entities.Record{HeroName: "Logan", SelectedPowers: []string{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r entities.Record
			require.NoError(t, json.Unmarshal([]byte(tc.input), &r))
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestRecordRejectsNonObject(t *testing.T) {
	var r entities.Record
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{`), &r))
}

func TestPresetByName(t *testing.T) {
	p, ok := entities.PresetByName("combined")
	require.True(t, ok)
	assert.True(t, p.IncludeTraits)
	assert.Equal(t, 2, p.Columns)

	p, ok = entities.PresetByName("powers")
	require.True(t, ok)
	assert.False(t, p.IncludeTraits)
	assert.Equal(t, 1, p.Columns)
	assert.Equal(t, entities.OrderAlphabetical, p.GroupOrder)

	_, ok = entities.PresetByName("other")
	assert.False(t, ok)
}
