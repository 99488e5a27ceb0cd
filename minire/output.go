package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/mfroeh/minire/regex"
)

var matchColor = color.New(color.FgRed, color.Bold)

type match struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Text  string `yaml:"text"`
}

type textReport struct {
	Pattern string  `yaml:"pattern"`
	Text    string  `yaml:"text"`
	Matches []match `yaml:"matches"`
}

type lineReport struct {
	Path    string  `yaml:"path"`
	Line    int     `yaml:"line"`
	Matches []match `yaml:"matches"`
}

type pathReport struct {
	Pattern string       `yaml:"pattern"`
	Results []lineReport `yaml:"results"`
}

func toMatches(text string, spans []regex.Span) []match {
	in := []rune(text)
	matches := make([]match, 0, len(spans))
	for _, sp := range spans {
		matches = append(matches, match{
			Start: sp.Start,
			End:   sp.End,
			Text:  string(in[sp.Start:sp.End]),
		})
	}
	return matches
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(v)
}

// highlight colors every character of text covered by at least one span.
// Spans may overlap, empty spans color nothing.
func highlight(text string, spans []regex.Span) string {
	in := []rune(text)
	matched := make([]bool, len(in))
	for _, sp := range spans {
		for i := sp.Start; i < sp.End; i++ {
			matched[i] = true
		}
	}

	out := strings.Builder{}
	for i := 0; i < len(in); {
		j := i
		for j < len(in) && matched[j] == matched[i] {
			j++
		}
		if matched[i] {
			out.WriteString(matchColor.Sprint(string(in[i:j])))
		} else {
			out.WriteString(string(in[i:j]))
		}
		i = j
	}
	return out.String()
}
