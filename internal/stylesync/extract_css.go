package stylesync

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// tokenParser walks a design-token stylesheet:
//
//	:root {
//	  /* @id: C1 */
//	  --sample-red: #d0021b;
//	}
//
//	/* @id: T1 */
//	.heading-large {
//	  font-family: "Helvetica";
//	  font-size: 24px;
//	  color: var(--sample-red);
//	}
//
// Custom properties of :root become colors; class rules with a font-family or
// font-size become text styles. An "@id" comment directly above an entry
// assigns its identifier; without one the entry name is the identifier.
type tokenParser struct {
	lexer     *css.Lexer
	pendingID string
	doc       rawDocument
	colorIDs  map[string]string // "--sample-red" -> identifier
}

// declaration is one property: value pair and the @id comment above it
type declaration struct {
	property string
	value    string
	id       string
}

func parseTokenStylesheet(content string) rawDocument {
	p := &tokenParser{
		lexer:    css.NewLexer(parse.NewInputString(content)),
		colorIDs: make(map[string]string),
	}

	for {
		tt, text := p.lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		switch {
		case tt == css.WhitespaceToken:
			continue
		case tt == css.CommentToken:
			if id := extractID(string(text)); id != "" {
				p.pendingID = id
			}
			continue
		case tt == css.ColonToken:
			p.handlePseudoRule()
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			p.handleClassRule()
		case tt == css.LeftBraceToken:
			p.skipBlock()
		}

		p.pendingID = ""
	}

	return p.doc
}

// handlePseudoRule processes ":root { ... }"; any other pseudo rule is skipped
func (p *tokenParser) handlePseudoRule() {
	tt, text := p.lexer.Next()
	isRoot := tt == css.IdentToken && string(text) == "root"

	if !p.advanceToBlock() {
		return
	}
	if !isRoot {
		p.skipBlock()
		return
	}

	for _, decl := range p.extractDeclarations() {
		if !strings.HasPrefix(decl.property, "--") {
			continue
		}

		id := decl.id
		if id == "" {
			id = decl.property
		}
		p.colorIDs[decl.property] = id

		p.doc.Colors = append(p.doc.Colors, rawColor{
			ID:   id,
			Name: tokenName(decl.property),
			Hex:  decl.value,
		})
	}
}

// handleClassRule processes ".name { ... }". Compound or combined selectors
// are not design tokens and are skipped.
func (p *tokenParser) handleClassRule() {
	id := p.pendingID

	tt, nameBytes := p.lexer.Next()
	if tt != css.IdentToken {
		if p.advanceToBlock() {
			p.skipBlock()
		}
		return
	}
	className := string(nameBytes)

	simple := true
	for {
		tt, _ := p.lexer.Next()
		if tt == css.ErrorToken {
			return
		}
		if tt == css.LeftBraceToken {
			break
		}
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			simple = false
		}
	}

	decls := p.extractDeclarations()
	if !simple {
		return
	}

	props := make(map[string]string, len(decls))
	for _, decl := range decls {
		props[decl.property] = decl.value
	}

	_, hasFamily := props["font-family"]
	_, hasSize := props["font-size"]
	if !hasFamily && !hasSize {
		return
	}

	if id == "" {
		id = "." + className
	}

	p.doc.TextStyles = append(p.doc.TextStyles, rawText{
		ID:         id,
		Name:       tokenName(className),
		Font:       strings.Trim(props["font-family"], `"'`),
		Size:       parseLength(props["font-size"]),
		Kerning:    parseLength(props["letter-spacing"]),
		LineHeight: parseLength(props["line-height"]),
		Color:      p.resolveColor(props["color"]),
	})
}

// resolveColor maps "var(--sample-red)" to the identifier of that color
func (p *tokenParser) resolveColor(value string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "var(") || !strings.HasSuffix(value, ")") {
		return ""
	}
	name := strings.TrimSpace(value[len("var(") : len(value)-1])
	return p.colorIDs[name]
}

// advanceToBlock reads tokens until "{"; false at EOF or ";"
func (p *tokenParser) advanceToBlock() bool {
	for {
		tt, _ := p.lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			return false
		case css.LeftBraceToken:
			return true
		}
	}
}

// skipBlock reads tokens until the "}" closing the current block
func (p *tokenParser) skipBlock() {
	depth := 1
	for depth > 0 {
		tt, _ := p.lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// extractDeclarations reads property: value pairs until }
func (p *tokenParser) extractDeclarations() []declaration {
	var decls []declaration

	var current declaration
	var value []string
	pendingID := ""

	flush := func() {
		if current.property != "" && len(value) > 0 {
			current.value = strings.TrimSpace(strings.Join(value, ""))
			decls = append(decls, current)
		}
		current = declaration{}
		value = nil
	}

	for {
		tt, text := p.lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			break
		}

		switch {
		case tt == css.CommentToken:
			if id := extractID(string(text)); id != "" {
				pendingID = id
			}
		case (tt == css.IdentToken || tt == css.CustomPropertyNameToken) && current.property == "":
			// Start of property name
			current.property = string(text)
			current.id = pendingID
			pendingID = ""
		case tt == css.ColonToken && current.property != "" && len(value) == 0:
			// Separator between property and value
			continue
		case tt == css.SemicolonToken:
			// End of declaration
			flush()
		case tt == css.LeftBraceToken:
			// Nested blocks are not supported
			p.skipBlock()
		case current.property != "":
			// Part of the value
			value = append(value, string(text))
		}
	}

	return decls
}

// extractID returns the identifier of an "@id" comment
func extractID(comment string) string {
	parts := strings.SplitN(comment, "@id", 2)
	if len(parts) != 2 {
		return ""
	}

	id := strings.TrimSpace(parts[1])
	id = strings.TrimSuffix(id, "*/")
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, ":")
	id = strings.TrimSpace(id)

	if fields := strings.Fields(id); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// tokenName turns "--sample-red" or "heading-large" into "Sample Red"
func tokenName(token string) string {
	words := strings.FieldsFunc(token, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

// parseLength reads the number of "24px", "0.5em" or "1.2"; other values are 0
func parseLength(value string) float64 {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) {
		c := value[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			end++
			continue
		}
		break
	}

	n, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0
	}
	return n
}
