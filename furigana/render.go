package furigana

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rubyalign/model"
)

// Style selects an output rendering for a segment list.
type Style string

const (
	StyleBrackets Style = "brackets"
	StyleHTML     Style = "html"
	StyleTerminal Style = "terminal"
	StyleJSON     Style = "json"
)

// ErrUnknownStyle is returned by Format for an unsupported Style.
var ErrUnknownStyle = errors.New("furigana: unknown output style")

var rubyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Faint(true)

// Format renders segs in the given style.
func Format(segs []model.Segment, style Style) (string, error) {
	switch style {
	case StyleBrackets:
		return FormatBrackets(segs), nil
	case StyleHTML:
		return FormatHTML(segs), nil
	case StyleTerminal:
		return FormatTerminal(segs), nil
	case StyleJSON:
		b, err := json.Marshal(segs)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
}

// FormatBrackets writes each annotated segment as text[ruby].
func FormatBrackets(segs []model.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
		if s.HasRuby() {
			b.WriteString("[" + s.Ruby + "]")
		}
	}
	return b.String()
}

// FormatHTML writes annotated segments as <ruby> elements. Plain segments are
// escaped and written as-is.
func FormatHTML(segs []model.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if !s.HasRuby() {
			b.WriteString(html.EscapeString(s.Text))
			continue
		}
		b.WriteString("<ruby>")
		b.WriteString(html.EscapeString(s.Text))
		b.WriteString("<rt>")
		b.WriteString(html.EscapeString(s.Ruby))
		b.WriteString("</rt></ruby>")
	}
	return b.String()
}

// FormatTerminal writes annotated segments as text(ruby) with the ruby
// styled for a terminal.
func FormatTerminal(segs []model.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
		if s.HasRuby() {
			b.WriteString(rubyStyle.Render("(" + s.Ruby + ")"))
		}
	}
	return b.String()
}
