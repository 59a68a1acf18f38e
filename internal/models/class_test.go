package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uref(v uint) Ref { return Ref{ID: &v} }

func TestParseRef(t *testing.T) {
	ref, ok := ParseRef(" 12 ")
	require.True(t, ok)
	require.NotNil(t, ref.ID)
	assert.Equal(t, uint(12), *ref.ID)

	ref, ok = ParseRef("2024-2025")
	require.True(t, ok)
	assert.Nil(t, ref.ID)
	assert.Equal(t, "2024-2025", ref.Label)

	_, ok = ParseRef("  ")
	assert.False(t, ok)
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name string
		ref  Ref
		want Level
		ok   bool
	}{
		{"first ordinal", uref(1), LevelCreche, true},
		{"middle ordinal", uref(4), LevelMiddle, true},
		{"ordinal out of range", uref(7), "", false},
		{"ordinal zero", uref(0), "", false},
		{"code", Ref{Label: "lyc"}, LevelHigh, true},
		{"label", Ref{Label: "Lycée"}, LevelHigh, true},
		{"label any case", Ref{Label: "primaire"}, LevelPrimary, true},
		{"unknown", Ref{Label: "université"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveLevel(tt.ref)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveTrack(t *testing.T) {
	got, ok := ResolveTrack(uref(2))
	assert.True(t, ok)
	assert.Equal(t, TrackMathSciences, got)

	got, ok = ResolveTrack(Ref{Label: "Littéraires"})
	assert.True(t, ok)
	assert.Equal(t, TrackArts, got)
}

func TestChoiceLabels(t *testing.T) {
	code := "clg"
	unknown := "zz"
	empty := ""
	assert.Equal(t, "Collège", LevelLabel(&code))
	assert.Equal(t, "zz", LevelLabel(&unknown))
	assert.Equal(t, NotApplicable, LevelLabel(&empty))
	assert.Equal(t, NotApplicable, TrackLabel(nil))

	levels := LevelChoices()
	require.Len(t, levels, 6)
	assert.Equal(t, ChoiceOption{ID: 6, Code: "aut", Label: "Autres"}, levels[5])
}

func TestClass_Validate(t *testing.T) {
	c := Class{Code: " 6A ", Label: "6e A"}
	require.NoError(t, c.Validate())
	assert.Equal(t, "6A", c.Code)
	assert.Equal(t, LevelOther, *c.Level)
	assert.Equal(t, TrackOther, *c.Track)

	bogus := Level("xyz")
	assert.ErrorIs(t, (&Class{Code: "6A", Label: "6e A", Level: &bogus}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Class{Code: "ABCDEFGHIJK", Label: "x"}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Class{Code: "6A"}).Validate(), ErrValidation)
}
