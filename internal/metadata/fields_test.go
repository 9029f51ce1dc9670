package metadata

import "testing"

func TestKnown(t *testing.T) {
	for _, field := range AllFields() {
		if !Known(string(field)) {
			t.Errorf("Known(%q) = false, want true", field)
		}
	}
	for _, name := range []string{"bogus_field", "Name", "NAME", "", "genre"} {
		if Known(name) {
			t.Errorf("Known(%q) = true, want false", name)
		}
	}
}

func TestFieldsGetDefaults(t *testing.T) {
	var empty Fields
	if got := empty.Get(FieldSecondaryGenre); got != DefaultSecondaryGenre {
		t.Errorf("secondary genre default = %q, want %q", got, DefaultSecondaryGenre)
	}
	if got := empty.Get(FieldLanguage); got != DefaultLanguage {
		t.Errorf("language default = %q, want %q", got, DefaultLanguage)
	}
	if got := empty.Get(FieldPublisher); got != DefaultValue {
		t.Errorf("publisher default = %q, want %q", got, DefaultValue)
	}

	blank := Fields{FieldLanguage: "  "}
	if got := blank.Get(FieldLanguage); got != DefaultLanguage {
		t.Errorf("blank language = %q, want default", got)
	}
}

func TestFieldsClonePopulatesEverything(t *testing.T) {
	fields := Fields{FieldName: "Galaxian"}.Clone()
	if len(fields) != len(AllFields()) {
		t.Fatalf("clone has %d fields, want %d", len(fields), len(AllFields()))
	}
	if fields[FieldName] != "Galaxian" {
		t.Fatalf("name = %q", fields[FieldName])
	}
	if fields[FieldControl] != DefaultValue {
		t.Fatalf("control = %q, want default", fields[FieldControl])
	}
}
