package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	cueTiming  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?\.\d{3}`)
	inlineTag  = regexp.MustCompile(`<[^>]+>`)
	annotation = regexp.MustCompile(`\[[^\]]*\]`)
)

// ParseVTT extracts the spoken text of a WebVTT transcript and splits it
// into sentences. Auto-generated captions repeat lines across cues; a line
// identical to the previous one is dropped.
func ParseVTT(r io.Reader) ([]string, error) {
	var dialogue []string
	last := ""
	inHeader := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "Kind:") || strings.HasPrefix(line, "Language:") {
			continue
		}
		// Header ends at the first blank line
		if line == "" {
			inHeader = false
			continue
		}
		if inHeader || cueTiming.MatchString(line) || isCueNumber(line) {
			continue
		}

		cleaned := strings.TrimSpace(inlineTag.ReplaceAllString(line, ""))
		if cleaned != "" && cleaned != last {
			dialogue = append(dialogue, cleaned)
			last = cleaned
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return SplitSentences(strings.Join(dialogue, " ")), nil
}

// SplitSentences removes [bracketed] annotations and splits text after
// . ! ? and ; when followed by whitespace
func SplitSentences(text string) []string {
	text = annotation.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")

	var sentences []string
	var current strings.Builder

	for i := 0; i < len(text); i++ {
		c := text[i]
		current.WriteByte(c)

		if c == '.' || c == '!' || c == '?' || c == ';' {
			if i+1 < len(text) && text[i+1] == ' ' {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// isCueNumber matches the optional numeric cue identifier line
func isCueNumber(line string) bool {
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return line != ""
}
