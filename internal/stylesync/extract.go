package stylesync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Document is the set of styles extracted from a design document, in
// document order
type Document struct {
	Colors []Style
	Texts  []Style
}

// Styles returns the styles of one kind
func (d Document) Styles(kind Kind) []Style {
	if kind == KindText {
		return d.Texts
	}
	return d.Colors
}

// rawColor is a color entry before naming and validation
type rawColor struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Hex   string   `json:"hex"`
	Alpha *float64 `json:"alpha,omitempty"`
}

// rawText is a text style entry before naming and validation
type rawText struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Font       string  `json:"font"`
	Size       float64 `json:"size"`
	Kerning    float64 `json:"kerning"`
	LineHeight float64 `json:"lineHeight"`
	Color      string  `json:"color"` // Identifier of a color entry
}

// rawDocument is the JSON design document format
type rawDocument struct {
	Colors     []rawColor `json:"colors"`
	TextStyles []rawText  `json:"textStyles"`
}

// ExtractDocument reads a design document. The format is chosen by
// extension: ".json" documents or ".css" design-token stylesheets.
// Entries that cannot be used are skipped with a warning.
func ExtractDocument(path string, namer VariableNamer, logger *Logger) (Document, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read design document: %w", err)
	}

	var raw rawDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Document{}, fmt.Errorf("decode design document %s: %w", path, err)
		}
	case ".css":
		raw = parseTokenStylesheet(string(data))
	default:
		return Document{}, fmt.Errorf("design document %s: unsupported format (want .json or .css)", path)
	}

	return buildDocument(raw, namer, logger), nil
}

// buildDocument validates raw entries and assigns variable names
func buildDocument(raw rawDocument, namer VariableNamer, logger *Logger) Document {
	var doc Document

	colorIDs := make(map[string]bool, len(raw.Colors))
	for _, entry := range raw.Colors {
		if entry.ID == "" {
			logger.Warnf(ContextExtract, "color %q has no identifier and was skipped", entry.Name)
			continue
		}
		if colorIDs[entry.ID] {
			logger.Warnf(ContextExtract, "color %q reuses identifier %s and was skipped", entry.Name, entry.ID)
			continue
		}

		color, err := parseHexColor(entry.Hex)
		if err != nil {
			logger.Warnf(ContextExtract, "color %q: %v", entry.Name, err)
			continue
		}
		if entry.Alpha != nil {
			color.Alpha = clamp01(*entry.Alpha)
		}

		colorIDs[entry.ID] = true
		doc.Colors = append(doc.Colors, Style{
			Identifier:   entry.ID,
			Name:         entry.Name,
			VariableName: namer(entry.Name),
			Kind:         KindColor,
			Color:        &color,
		})
	}

	textIDs := make(map[string]bool, len(raw.TextStyles))
	for _, entry := range raw.TextStyles {
		if entry.ID == "" {
			logger.Warnf(ContextExtract, "text style %q has no identifier and was skipped", entry.Name)
			continue
		}
		if textIDs[entry.ID] {
			logger.Warnf(ContextExtract, "text style %q reuses identifier %s and was skipped", entry.Name, entry.ID)
			continue
		}
		if !colorIDs[entry.Color] {
			logger.Warnf(ContextExtract, "%s does not use a color from the shared color scheme", entry.Name)
			continue
		}

		textIDs[entry.ID] = true
		doc.Texts = append(doc.Texts, Style{
			Identifier:   entry.ID,
			Name:         entry.Name,
			VariableName: namer(entry.Name),
			Kind:         KindText,
			Text: &TextAttributes{
				FontName:   entry.Font,
				PointSize:  entry.Size,
				Kerning:    entry.Kerning,
				LineHeight: entry.LineHeight,
				ColorID:    entry.Color,
			},
		})
	}

	doc.Colors = resolveNameCollisions(doc.Colors, logger)
	doc.Texts = resolveNameCollisions(doc.Texts, logger)

	return doc
}

// resolveNameCollisions adds numeric suffixes to repeated variable names.
// The first style keeps the original name.
func resolveNameCollisions(styles []Style, logger *Logger) []Style {
	used := make(map[string]bool, len(styles))
	for _, style := range styles {
		used[style.VariableName] = true
	}

	seen := make(map[string]bool, len(styles))
	result := make([]Style, 0, len(styles))
	for _, style := range styles {
		name := style.VariableName
		if name == "" {
			logger.Warnf(ContextExtract, "%s style %s has no usable name and was skipped", style.Kind, style.Identifier)
			continue
		}
		if seen[name] {
			for i := 2; ; i++ {
				candidate := name + strconv.Itoa(i)
				if !used[candidate] {
					logger.Warnf(ContextExtract, "%s style %q renamed to %s: name already in use", style.Kind, style.Name, candidate)
					style = style.WithVariableName(candidate)
					used[candidate] = true
					break
				}
			}
		}
		seen[style.VariableName] = true
		result = append(result, style)
	}

	return result
}

// resolveKindCollisions renames text styles whose variable name is taken by a
// color style. It is used when both kinds are generated into the same folder,
// where one package must not declare a name twice. Colors keep their names.
func resolveKindCollisions(doc Document, logger *Logger) Document {
	colors := make(map[string]Style, len(doc.Colors))
	used := make(map[string]bool, len(doc.Colors)+len(doc.Texts))
	for _, style := range doc.Colors {
		colors[style.VariableName] = style
		used[style.VariableName] = true
	}
	for _, style := range doc.Texts {
		used[style.VariableName] = true
	}

	texts := make([]Style, 0, len(doc.Texts))
	for _, style := range doc.Texts {
		if color, taken := colors[style.VariableName]; taken {
			for i := 2; ; i++ {
				candidate := style.VariableName + strconv.Itoa(i)
				if !used[candidate] {
					logger.Warnf(ContextExtract, "text style %q renamed to %s: color style %q uses the name %s",
						style.Name, candidate, color.Name, style.VariableName)
					style = style.WithVariableName(candidate)
					used[candidate] = true
					break
				}
			}
		}
		texts = append(texts, style)
	}
	doc.Texts = texts

	return doc
}

// parseHexColor parses "#rgb", "#rrggbb" and "#rrggbbaa"
func parseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	switch len(s) {
	case 4, 7, 9:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	return Color{Red: c.R, Green: c.G, Blue: c.B, Alpha: alpha}, nil
}
