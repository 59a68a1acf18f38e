package models

import (
	"strconv"
	"strings"
	"time"
)

// Level is the education level of a class
type Level string

// Level constants, in display order
const (
	LevelCreche   Level = "cre"
	LevelMaternal Level = "mat"
	LevelPrimary  Level = "pri"
	LevelMiddle   Level = "clg"
	LevelHigh     Level = "lyc"
	LevelOther    Level = "aut"
)

// Track is the option followed by a class
type Track string

// Track constants, in display order
const (
	TrackExperimentalSciences Track = "se"
	TrackMathSciences         Track = "sm"
	TrackSocialSciences       Track = "ss"
	TrackSciences             Track = "sc"
	TrackArts                 Track = "lit"
	TrackOther                Track = "aut"
)

type choice struct {
	code  string
	label string
}

var levelChoices = []choice{
	{string(LevelCreche), "Crèche"},
	{string(LevelMaternal), "Maternel"},
	{string(LevelPrimary), "Primaire"},
	{string(LevelMiddle), "Collège"},
	{string(LevelHigh), "Lycée"},
	{string(LevelOther), "Autres"},
}

var trackChoices = []choice{
	{string(TrackExperimentalSciences), "Sciences Expérimentales"},
	{string(TrackMathSciences), "Sciences Mathématiques"},
	{string(TrackSocialSciences), "Sciences Sociales"},
	{string(TrackSciences), "Scientifiques"},
	{string(TrackArts), "Littéraires"},
	{string(TrackOther), "Autres"},
}

// NotApplicable labels a missing group key in breakdowns
const NotApplicable = "N/A"

// resolveChoice maps a 1-based ordinal, a code or a display label to a code
func resolveChoice(choices []choice, ref Ref) (string, bool) {
	if ref.ID != nil {
		i := int(*ref.ID)
		if i < 1 || i > len(choices) {
			return "", false
		}
		return choices[i-1].code, true
	}
	for _, c := range choices {
		if strings.EqualFold(c.code, ref.Label) || strings.EqualFold(c.label, ref.Label) {
			return c.code, true
		}
	}
	return "", false
}

func choiceLabel(choices []choice, code *string) string {
	if code == nil || *code == "" {
		return NotApplicable
	}
	for _, c := range choices {
		if c.code == *code {
			return c.label
		}
	}
	return *code
}

// ResolveLevel returns the level code designated by ref
func ResolveLevel(ref Ref) (Level, bool) {
	code, ok := resolveChoice(levelChoices, ref)
	return Level(code), ok
}

// ResolveTrack returns the track code designated by ref
func ResolveTrack(ref Ref) (Track, bool) {
	code, ok := resolveChoice(trackChoices, ref)
	return Track(code), ok
}

// LevelLabel returns the display label of a level code, or N/A
func LevelLabel(code *string) string {
	return choiceLabel(levelChoices, code)
}

// TrackLabel returns the display label of a track code, or N/A
func TrackLabel(code *string) string {
	return choiceLabel(trackChoices, code)
}

// IsValid reports whether l is a known level
func (l Level) IsValid() bool {
	_, ok := resolveChoice(levelChoices, Ref{Label: string(l)})
	return ok && l != ""
}

// IsValid reports whether t is a known track
func (t Track) IsValid() bool {
	_, ok := resolveChoice(trackChoices, Ref{Label: string(t)})
	return ok && t != ""
}

// Class represents a class (classe) of the institution
type Class struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"column:code_classe;size:10;uniqueIndex;not null" json:"code_classe"`
	Label     string    `gorm:"column:lib_classe;size:50;not null;index" json:"lib_classe"`
	Level     *Level    `gorm:"column:niveau_classe;size:3;default:aut" json:"niveau_classe"`
	Track     *Track    `gorm:"column:option_classe;size:3;default:aut" json:"option_classe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Class
func (Class) TableName() string {
	return "classes"
}

// Validate checks the class before persistence
func (c *Class) Validate() error {
	c.Code = strings.TrimSpace(c.Code)
	c.Label = strings.TrimSpace(c.Label)
	if c.Code == "" {
		return invalid("le code de la classe est requis")
	}
	if len(c.Code) > 10 {
		return invalid("le code de la classe ne doit pas dépasser 10 caractères")
	}
	if c.Label == "" {
		return invalid("le libellé de la classe est requis")
	}
	if c.Level == nil || *c.Level == "" {
		l := LevelOther
		c.Level = &l
	} else if !c.Level.IsValid() {
		return invalid("niveau inconnu: %s", *c.Level)
	}
	if c.Track == nil || *c.Track == "" {
		t := TrackOther
		c.Track = &t
	} else if !c.Track.IsValid() {
		return invalid("option inconnue: %s", *c.Track)
	}
	return nil
}

// ClassResponse is the JSON response format for classes
type ClassResponse struct {
	ID        uint   `json:"id"`
	Code      string `json:"code_classe"`
	Label     string `json:"lib_classe"`
	Level     *Level `json:"niveau_classe"`
	Track     *Track `json:"option_classe"`
	LevelName string `json:"niveau_nom"`
	TrackName string `json:"option_nom"`
}

// ToResponse converts Class to ClassResponse
func (c *Class) ToResponse() ClassResponse {
	return ClassResponse{
		ID:        c.ID,
		Code:      c.Code,
		Label:     c.Label,
		Level:     c.Level,
		Track:     c.Track,
		LevelName: LevelLabel((*string)(c.Level)),
		TrackName: TrackLabel((*string)(c.Track)),
	}
}

// Ref designates a reference row either by numeric id or by label
type Ref struct {
	ID    *uint
	Label string
}

// ParseRef resolves a raw query value once: digits become an id, anything else a label.
// An empty value yields ok=false.
func ParseRef(raw string) (Ref, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Ref{}, false
	}
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		id := uint(n)
		return Ref{ID: &id}, true
	}
	return Ref{Label: raw}, true
}

// ChoiceOption is one entry of the level or track lists
type ChoiceOption struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Label string `json:"libelle"`
}

func listChoices(choices []choice) []ChoiceOption {
	out := make([]ChoiceOption, len(choices))
	for i, c := range choices {
		out[i] = ChoiceOption{ID: i + 1, Code: c.code, Label: c.label}
	}
	return out
}

// LevelChoices lists the education levels with their ordinal ids
func LevelChoices() []ChoiceOption { return listChoices(levelChoices) }

// TrackChoices lists the tracks with their ordinal ids
func TrackChoices() []ChoiceOption { return listChoices(trackChoices) }
