package metadata

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DescriptorFileName is the per-archive metadata file shipped inside GameBase
// archives.
const DescriptorFileName = "VERSION.NFO"

// ParseError reports a descriptor file that was present but unreadable or
// structurally unparseable. It travels as data so a batch can continue with
// the remaining games.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse descriptor %s: %s", e.Path, e.Reason)
}

var (
	sectionPattern = regexp.MustCompile(`(?s)GAME INFO(.*?)(?:GAME HISTORY|$)`)
	namePattern    = regexp.MustCompile(`(?m)^[ \t]*Name:[ \t]*(.+)$`)
	genrePattern   = regexp.MustCompile(`Genre:[ \t]*([^\n]+(?:\n[ \t]+[^\n]+)*)`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

var linePatterns = map[Field]*regexp.Regexp{
	FieldLanguage:  linePattern("Language"),
	FieldPublisher: linePattern("Published"),
	FieldPlayers:   linePattern("Players"),
	FieldControl:   linePattern("Control"),
	FieldPalNTSC:   linePattern("Pal/NTSC"),
	FieldUniqueID:  linePattern("Unique-ID"),
	FieldDeveloper: linePattern("Developer"),
	FieldCoding:    linePattern("Coding"),
	FieldGraphics:  linePattern("Graphics"),
	FieldMusic:     linePattern("Music"),
	FieldComment:   linePattern("Comment"),
}

func linePattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)` + regexp.QuoteMeta(key) + `:[ \t]*(.+)$`)
}

// FindDescriptor searches root recursively for the descriptor file. The walk
// is lexicographic, so repeated runs over the same tree find the same file.
func FindDescriptor(root string) (string, bool) {
	var found string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if strings.EqualFold(entry.Name(), DescriptorFileName) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}

// ParseDescriptor reads and parses a descriptor file into a fully populated
// field set. A *ParseError is returned when the file cannot be read or when
// the required Name and Genre fields cannot be extracted.
func ParseDescriptor(path string) (Fields, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error()}
	}
	fields, perr := parseDescriptorContent(decodeDescriptor(raw))
	if perr != "" {
		return nil, &ParseError{Path: path, Reason: perr}
	}
	return fields, nil
}

// decodeDescriptor turns raw descriptor bytes into text. UTF-8 input is used
// as-is (BOM stripped); anything else is treated as Windows-1252 with a
// Latin-1 fallback, matching the encodings GameBase tooling historically
// produced.
func decodeDescriptor(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
		return string(decoded)
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(decoded)
}

func parseDescriptorContent(content string) (Fields, string) {
	// When the GAME INFO header is absent the whole file is scanned for the
	// same patterns. Loose on purpose; tightening it would reject descriptors
	// the original tooling accepts.
	section := content
	if match := sectionPattern.FindStringSubmatch(content); match != nil {
		section = match[1]
	}

	nameMatch := namePattern.FindStringSubmatch(section)
	if nameMatch == nil {
		return nil, "no Name field"
	}
	name := strings.TrimSpace(nameMatch[1])

	genreMatch := genrePattern.FindStringSubmatch(content)
	if genreMatch == nil {
		return nil, "no Genre field"
	}
	primary, secondary := splitGenre(genreMatch[1])

	fields := Fields{
		FieldName:           name,
		FieldPrimaryGenre:   primary,
		FieldSecondaryGenre: secondary,
	}

	// Language, Published, Players, Control, and Pal/NTSC may sit outside the
	// section; credit fields and the unique ID live inside it.
	scanInto(fields, FieldLanguage, content)
	scanInto(fields, FieldPlayers, content)
	scanInto(fields, FieldControl, content)
	scanInto(fields, FieldPalNTSC, content)
	scanInto(fields, FieldUniqueID, section)
	scanInto(fields, FieldDeveloper, section)
	scanInto(fields, FieldCoding, section)
	scanInto(fields, FieldGraphics, section)
	scanInto(fields, FieldMusic, section)
	scanInto(fields, FieldComment, section)

	if match := linePatterns[FieldPublisher].FindStringSubmatch(content); match != nil {
		year, publisher := splitPublished(strings.TrimSpace(match[1]))
		if year != "" {
			fields[FieldPublishedYear] = year
		}
		if publisher != "" {
			fields[FieldPublisher] = publisher
		}
	}

	return fields.Clone(), ""
}

func scanInto(fields Fields, field Field, text string) {
	if match := linePatterns[field].FindStringSubmatch(text); match != nil {
		if value := strings.TrimSpace(match[1]); value != "" {
			fields[field] = value
		}
	}
}

// splitGenre collapses a possibly multi-line genre value and splits it once on
// " - " into primary and secondary genres.
func splitGenre(raw string) (string, string) {
	genre := strings.TrimSpace(spacePattern.ReplaceAllString(raw, " "))
	if primary, secondary, ok := strings.Cut(genre, " - "); ok {
		return strings.TrimSpace(primary), strings.TrimSpace(secondary)
	}
	return genre, DefaultSecondaryGenre
}

// splitPublished separates "YEAR Publisher" when the first token looks like a
// four-character year (digits, with ? for unknown digits, normalized to x so
// the value stays a clean path segment). Otherwise the whole value is the
// publisher.
func splitPublished(raw string) (year, publisher string) {
	if raw == "" {
		return "", ""
	}
	tokens := strings.Fields(raw)
	if len(tokens) > 0 && looksLikeYear(tokens[0]) {
		year = strings.ReplaceAll(tokens[0], "?", "x")
		publisher = strings.TrimSpace(strings.TrimPrefix(raw, tokens[0]))
		return year, publisher
	}
	return "", raw
}

func looksLikeYear(token string) bool {
	if len(token) != 4 {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && r != '?' {
			return false
		}
	}
	return true
}
