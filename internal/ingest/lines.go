// Package ingest turns claim files and subtitle transcripts into claim texts.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads claims from a file. WebVTT files (.vtt) are parsed into
// sentences; any other file holds one claim per line.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".vtt") {
		return ParseVTT(file)
	}
	return ReadLines(file)
}

// ReadLines reads one claim per line, skipping blank lines, "#" comments
// and duplicates
func ReadLines(r io.Reader) ([]string, error) {
	return scanLines(r, true)
}

// ReadPasted reads claims typed or piped on stdin. Repeated lines are kept:
// every submitted line gets its own record.
func ReadPasted(r io.Reader) ([]string, error) {
	return scanLines(r, false)
}

func scanLines(r io.Reader, dedupe bool) ([]string, error) {
	var lines []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if dedupe && seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return lines, nil
}
