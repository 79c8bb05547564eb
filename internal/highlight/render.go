// Package highlight colors discovered terms inside the original text.
package highlight

import (
	"fmt"
	"html"
	"strings"

	"github.com/fatih/color"

	"github.com/hukuksozluk/vurgu/internal/term"
)

// Segment is one displayed piece of the input: a single whitespace-delimited
// token, or several consecutive tokens forming a multi-word term.
type Segment struct {
	// Text is the original text with its punctuation.
	Text string
	// Term is the matched term; empty when the segment is not highlighted.
	Term  string
	Color Pair
}

func (s Segment) Highlighted() bool {
	return s.Term != ""
}

// Render splits input on whitespace and marks the tokens whose cleaned form is
// a key of terms. Runs of tokens matching a multi-word term are merged, the
// longest run winning.
func Render(input string, terms map[string]Pair) []Segment {
	tokens := strings.Fields(input)
	cleaned := make([]string, len(tokens))
	for i, token := range tokens {
		cleaned[i] = term.Clean(token)
	}

	maxWords := 1
	for t := range terms {
		maxWords = max(maxWords, len(strings.Fields(t)))
	}

	segments := make([]Segment, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := 0
		for n := min(maxWords, len(tokens)-i); n >= 1; n-- {
			candidate := cleaned[i]
			if n > 1 {
				candidate = term.Clean(strings.Join(tokens[i:i+n], " "))
			}
			if pair, ok := terms[candidate]; ok && candidate != "" {
				segments = append(segments, Segment{
					Text:  strings.Join(tokens[i:i+n], " "),
					Term:  candidate,
					Color: pair,
				})
				matched = n
				break
			}
		}
		if matched == 0 {
			segments = append(segments, Segment{Text: tokens[i]})
			matched = 1
		}
		i += matched
	}
	return segments
}

// Plain joins the segment texts with single spaces.
func Plain(segments []Segment) string {
	texts := make([]string, len(segments))
	for i, segment := range segments {
		texts[i] = segment.Text
	}
	return strings.Join(texts, " ")
}

// HTML renders highlighted segments as styled spans.
func HTML(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, segment := range segments {
		text := html.EscapeString(segment.Text)
		if !segment.Highlighted() {
			parts[i] = text
			continue
		}
		parts[i] = fmt.Sprintf(
			"<span class='highlight-box' style='background-color: %s; color: %s;'>%s</span>",
			segment.Color.Background, segment.Color.Foreground, text,
		)
	}
	return strings.Join(parts, " ")
}

// Markdown renders highlighted segments in bold.
func Markdown(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, segment := range segments {
		if segment.Highlighted() {
			parts[i] = "**" + segment.Text + "**"
		} else {
			parts[i] = segment.Text
		}
	}
	return strings.Join(parts, " ")
}

// Terminal renders highlighted segments with 24-bit ANSI colors.
// Output is plain when color.NoColor is set.
func Terminal(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, segment := range segments {
		if !segment.Highlighted() {
			parts[i] = segment.Text
			continue
		}
		parts[i] = Colorize(segment.Color, segment.Text)
	}
	return strings.Join(parts, " ")
}

// Colorize paints text with pair for terminal output.
func Colorize(pair Pair, text string) string {
	r, g, b, err := ParseHex(pair.Background)
	if err != nil {
		return text
	}
	c := color.New().AddBgRGB(int(r), int(g), int(b))
	if pair.Foreground == LabelWhite {
		c = c.Add(color.FgHiWhite)
	} else {
		c = c.Add(color.FgBlack)
	}
	return c.Sprint(text)
}
