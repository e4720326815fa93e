package stylesync

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/lucasb-eyer/go-colorful"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

// Built-in template files, used when no template is configured
const (
	builtinColorTemplate = "templates/color_styles.gen.go.tmpl"
	builtinTextTemplate  = "templates/text_styles.gen.go.tmpl"
)

// TemplateColor is the color data exposed to templates
type TemplateColor struct {
	VariableName string // Variable name of the color style
	Red          float64
	Green        float64
	Blue         float64
	Alpha        float64
	Hex          string // "#d0021b"
}

// TemplateStyle is one style as exposed to templates
type TemplateStyle struct {
	Identifier   string
	Name         string
	VariableName string
	Deprecated   bool
	Color        TemplateColor // The style itself for colors, the resolved text color for text styles
	FontName     string
	PointSize    float64
	Kerning      float64
	LineHeight   float64
}

// TemplateData is the root object of a template
type TemplateData struct {
	Version string
	Package string
	Kind    Kind
	Styles  []TemplateStyle
}

// Generator turns an ordered style list into source code with a text template.
// It never reorders or filters the styles it is given.
type Generator struct {
	kind     Kind
	fileName string // "ColorStyles.swift"
	fileType string // "swift"
	tmpl     *template.Template
}

var templateFuncs = template.FuncMap{
	"camel":  Camelcased,
	"pascal": Capitalized,
	"snake":  LowercasedWithUnderscores,
	"float":  formatFloat,
	"channel": func(v float64) int {
		return int(math.Round(clamp01(v) * 255))
	},
}

// NewGenerator parses the template at path, or the built-in Go template of
// the kind when path is empty. A template that cannot be read or parsed is a
// fatal error for the run.
func NewGenerator(path string, kind Kind) (*Generator, error) {
	var (
		data []byte
		err  error
		name string
	)

	if path == "" {
		name = builtinColorTemplate
		if kind == KindText {
			name = builtinTextTemplate
		}
		data, err = builtinTemplates.ReadFile(name)
	} else {
		name = path
		// #nosec G304 - path comes from trusted configuration
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s template: %w", kind, err)
	}

	return ParseGenerator(name, string(data), kind)
}

// ParseGenerator parses template source. The output file name is the
// template's base name without ".tmpl"; its extension is the file type.
func ParseGenerator(name, source string, kind Kind) (*Generator, error) {
	fileName := strings.TrimSuffix(filepath.Base(name), ".tmpl")
	fileType := strings.TrimPrefix(filepath.Ext(fileName), ".")

	tmpl, err := template.New(fileName).
		Funcs(templateFuncs).
		Option("missingkey=error").
		Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse %s template %s: %w", kind, name, err)
	}

	return &Generator{
		kind:     kind,
		fileName: fileName,
		fileType: fileType,
		tmpl:     tmpl,
	}, nil
}

// FileName returns the name of the generated file
func (g *Generator) FileName() string { return g.fileName }

// FileType returns the extension of the generated file
func (g *Generator) FileType() string { return g.fileType }

// Generate renders styles. colors resolves the color of text styles and may
// be nil for color generators. Output is deterministic for identical input.
func (g *Generator) Generate(styles []Style, colors []Style, version Version, packageName string) (string, error) {
	colorByID := make(map[string]Style, len(colors))
	for _, c := range colors {
		if _, exists := colorByID[c.Identifier]; !exists {
			colorByID[c.Identifier] = c
		}
	}

	data := TemplateData{
		Version: version.String(),
		Package: packageName,
		Kind:    g.kind,
		Styles:  make([]TemplateStyle, 0, len(styles)),
	}

	for _, style := range styles {
		ts := TemplateStyle{
			Identifier:   style.Identifier,
			Name:         style.Name,
			VariableName: style.VariableName,
			Deprecated:   style.Deprecated,
		}

		if style.Color != nil {
			ts.Color = templateColor(style.VariableName, *style.Color)
		}

		if style.Text != nil {
			ts.FontName = style.Text.FontName
			ts.PointSize = style.Text.PointSize
			ts.Kerning = style.Text.Kerning
			ts.LineHeight = style.Text.LineHeight
			if c, ok := colorByID[style.Text.ColorID]; ok && c.Color != nil {
				ts.Color = templateColor(c.VariableName, *c.Color)
			}
		}

		data.Styles = append(data.Styles, ts)
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", g.fileName, err)
	}

	return buf.String(), nil
}

func templateColor(variableName string, c Color) TemplateColor {
	return TemplateColor{
		VariableName: variableName,
		Red:          c.Red,
		Green:        c.Green,
		Blue:         c.Blue,
		Alpha:        c.Alpha,
		Hex:          colorful.Color{R: c.Red, G: c.Green, B: c.Blue}.Clamped().Hex(),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// formatFloat prints the shortest representation: 24, 0.5, 1.25
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
