package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/minire/regex"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var cli struct {
	Pattern string   `arg:"" optional:"" name:"pattern" help:"Regex pattern to search for, asked for on stdin if omitted" type:"string"`
	Text    string   `arg:"" optional:"" name:"text" help:"Text to search, asked for on stdin if omitted and no --path is given" type:"string"`
	Paths   []string `name:"path" short:"p" help:"Search the lines of these files, directories are searched recursively" type:"path"`
	Format  string   `name:"format" short:"f" help:"Output format, one of: ${enum}" enum:"text,yaml" default:"text" env:"MINIRE_FORMAT"`
	NoColor bool     `name:"no-color" help:"Don't highlight matches"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("minire"),
		kong.Description("Finds every match of a minimal regex pattern (literals, '.', \\w, \\s, \\d, '*', '+') in a text."),
		kong.UsageOnError(),
	)

	if cli.NoColor {
		color.NoColor = true
	}

	stdin := bufio.NewReader(os.Stdin)

	pattern := cli.Pattern
	if pattern == "" {
		var err error
		pattern, err = prompt(stdin, os.Stdout, "Enter the regex pattern: ")
		if err != nil {
			log.Fatalf("failed to read pattern: %v", err)
		}
	}

	re, err := regex.Compile(strings.TrimSpace(pattern))
	if err != nil {
		log.Fatalf("failed to build regex: %v", err)
	}

	var found bool
	if len(cli.Paths) > 0 {
		s := &searcher{w: os.Stdout, re: re, format: cli.Format}
		for _, path := range cli.Paths {
			if err := s.searchPath(path); err != nil {
				log.Fatalf("%v", err)
			}
		}
		if err := s.flush(); err != nil {
			log.Fatalf("failed to write results: %v", err)
		}
		found = s.found
	} else {
		text := cli.Text
		if text == "" {
			text, err = prompt(stdin, os.Stdout, "Enter the text to match: ")
			if err != nil {
				log.Fatalf("failed to read text: %v", err)
			}
		}

		found, err = report(os.Stdout, re, strings.TrimSpace(text), cli.Format)
		if err != nil {
			log.Fatalf("failed to write results: %v", err)
		}
	}

	if !found {
		os.Exit(1)
	}
}

// prompt writes msg and reads one line. A missing trailing newline is fine.
func prompt(r *bufio.Reader, w io.Writer, msg string) (string, error) {
	fmt.Fprint(w, msg)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// report prints every match of re in text and whether there was one
func report(w io.Writer, re regex.Regex, text string, format string) (bool, error) {
	spans, err := re.FindAll(text, -1)
	if err != nil && !errors.Is(err, regex.ErrNoMatch) {
		return false, err
	}

	if format == formatYAML {
		return len(spans) > 0, writeYAML(w, textReport{
			Pattern: re.String(),
			Text:    text,
			Matches: toMatches(text, spans),
		})
	}

	if err != nil {
		fmt.Fprintf(w, "No match found: %v\n", err)
		return false, nil
	}

	for _, sp := range spans {
		fmt.Fprintf(w, "Match found from index %d to %d\n", sp.Start, sp.End-1)
	}
	fmt.Fprintln(w, highlight(text, spans))
	return true, nil
}
