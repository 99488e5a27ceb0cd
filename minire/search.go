package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfroeh/minire/regex"
)

// searcher reports the matching lines of files
type searcher struct {
	w      io.Writer
	re     regex.Regex
	format string

	found bool
	// only collected for yaml output, written by flush
	lines []lineReport
}

func (s *searcher) searchPath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if info.IsDir() {
		return s.recursivelySearchDir(path)
	}
	return s.searchFile(path)
}

func (s *searcher) recursivelySearchDir(path string) error {
	return filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := resolveSymlink(path)
			// broken links are skipped
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if err != nil {
				return err
			}
			// links to directories are not followed
			if target == "" {
				return nil
			}
			path = target
		}

		return s.searchFile(path)
	})
}

// resolveSymlink returns the file link points to, or "" if it is a directory.
// Relative targets are relative to the directory containing link.
func resolveSymlink(link string) (string, error) {
	target, err := os.Readlink(link)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(link), target)
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", nil
	}
	return target, nil
}

func (s *searcher) searchFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if len(content) == 0 {
		return nil
	}

	// a final newline ends the last line, it doesn't start another one
	text := strings.TrimSuffix(string(content), "\n")

	printFileHeader := false
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		spans, err := s.re.FindAll(line, -1)
		if errors.Is(err, regex.ErrNoMatch) {
			continue
		}
		if err != nil {
			return err
		}
		s.found = true

		if s.format == formatYAML {
			s.lines = append(s.lines, lineReport{
				Path:    path,
				Line:    i + 1,
				Matches: toMatches(line, spans),
			})
			continue
		}

		if !printFileHeader {
			printFileHeader = true
			fmt.Fprintln(s.w, path, ":")
		}
		fmt.Fprintf(s.w, "%d:%s\n", i+1, highlight(line, spans))
	}

	if printFileHeader {
		fmt.Fprintln(s.w)
	}

	return nil
}

func (s *searcher) flush() error {
	if s.format != formatYAML {
		return nil
	}
	return writeYAML(s.w, pathReport{
		Pattern: s.re.String(),
		Results: s.lines,
	})
}
