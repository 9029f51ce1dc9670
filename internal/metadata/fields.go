package metadata

import "strings"

// Field names one enumerated metadata attribute of a game. The set is closed:
// template validation is a membership check against Known, and adding a field
// means touching this file.
type Field string

const (
	FieldName           Field = "name"
	FieldPrimaryGenre   Field = "primary_genre"
	FieldSecondaryGenre Field = "secondary_genre"
	FieldLanguage       Field = "language"
	FieldPublishedYear  Field = "published_year"
	FieldPublisher      Field = "publisher"
	FieldDeveloper      Field = "developer"
	FieldPlayers        Field = "players"
	FieldControl        Field = "control"
	FieldPalNTSC        Field = "pal_ntsc"
	FieldUniqueID       Field = "unique_id"
	FieldCoding         Field = "coding"
	FieldGraphics       Field = "graphics"
	FieldMusic          Field = "music"
	FieldComment        Field = "comment"
)

// DefaultSecondaryGenre fills the secondary genre when a descriptor carries a
// single-valued Genre line.
const DefaultSecondaryGenre = "Other"

// DefaultLanguage mirrors the GameBase convention for games without text.
const DefaultLanguage = "(No Text)"

// DefaultValue fills every other unpopulated field.
const DefaultValue = "Unknown"

var allFields = []Field{
	FieldName,
	FieldPrimaryGenre,
	FieldSecondaryGenre,
	FieldLanguage,
	FieldPublishedYear,
	FieldPublisher,
	FieldDeveloper,
	FieldPlayers,
	FieldControl,
	FieldPalNTSC,
	FieldUniqueID,
	FieldCoding,
	FieldGraphics,
	FieldMusic,
	FieldComment,
}

var fieldSet = func() map[Field]struct{} {
	set := make(map[Field]struct{}, len(allFields))
	for _, field := range allFields {
		set[field] = struct{}{}
	}
	return set
}()

// AllFields returns the canonical field ordering.
func AllFields() []Field {
	cp := make([]Field, len(allFields))
	copy(cp, allFields)
	return cp
}

// Known reports whether name identifies a field in the closed set.
func Known(name string) bool {
	_, ok := fieldSet[Field(name)]
	return ok
}

// Fields maps field names to raw (unsanitized) string values.
type Fields map[Field]string

// Get returns the value for field, falling back to the field default so
// template expansion never sees a missing key.
func (f Fields) Get(field Field) string {
	if f != nil {
		if value, ok := f[field]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return fieldDefault(field)
}

// Clone returns a copy of f with all known fields populated.
func (f Fields) Clone() Fields {
	out := make(Fields, len(allFields))
	for _, field := range allFields {
		out[field] = f.Get(field)
	}
	return out
}

func fieldDefault(field Field) string {
	switch field {
	case FieldSecondaryGenre:
		return DefaultSecondaryGenre
	case FieldLanguage:
		return DefaultLanguage
	default:
		return DefaultValue
	}
}

// Record is the transient per-archive unit of work: the archive key, the
// resolved field set, and the payload files discovered after extraction.
// Records are discarded once the game has been placed or skipped.
type Record struct {
	Key          string
	Fields       Fields
	PayloadFiles []string
}
