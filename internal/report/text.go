// Package report renders verdict records for terminals and files.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/verdict/internal/model"
)

var (
	colorTrue    = lipgloss.Color("#8BC34A")
	colorFalse   = lipgloss.Color("#e53935")
	colorWarn    = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#8a94a6")
	colorHeading = lipgloss.Color("#101F38")
)

// styles renders text with or without colour
type styles struct {
	color bool
}

func (s styles) render(c lipgloss.Color, bold bool, text string) string {
	if !s.color {
		return text
	}
	return lipgloss.NewStyle().Foreground(c).Bold(bold).Render(text)
}

func (s styles) verdict(v string) string {
	if v == "" {
		v = "?"
	}
	return s.render(verdictColor(v), true, v)
}

func verdictColor(v string) lipgloss.Color {
	switch v {
	case model.VerdictTrue, "EXACT", "PLUTOT_VRAI":
		return colorTrue
	case model.VerdictFalse, model.VerdictUnfounded, "INEXACT", "TROMPEUR", "PLUTOT_FAUX":
		return colorFalse
	case model.VerdictBias, model.VerdictContested, "NUANCE", "PARTIELLEMENT_VRAI":
		return colorWarn
	case model.VerdictAdmitted:
		return colorMuted
	default:
		return colorInfo
	}
}

// Text writes a human-readable report of every record followed by the
// statistics line
func Text(w io.Writer, records []model.VerdictRecord, color bool) error {
	s := styles{color: color}
	var sb strings.Builder

	for i, rec := range records {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeRecord(&sb, s, rec)
	}

	sb.WriteString("\n")
	sb.WriteString(s.render(colorHeading, true, StatsLine(model.Summarize(records))))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Record writes a single record, as printed in interactive mode
func Record(w io.Writer, rec model.VerdictRecord, color bool) error {
	var sb strings.Builder
	writeRecord(&sb, styles{color: color}, rec)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeRecord(sb *strings.Builder, s styles, rec model.VerdictRecord) {
	fmt.Fprintf(sb, "%s %s\n", s.render(colorMuted, false, fmt.Sprintf("[%d]", rec.Index+1)), s.render(colorHeading, true, rec.Claim))

	if !rec.IsSuccess() {
		fmt.Fprintf(sb, "    %s %s\n", s.render(colorFalse, true, "ERREUR ("+string(rec.Stage)+") :"), rec.Error)
		return
	}

	category := fmt.Sprintf("%s (%s)", rec.Category.Description(), rec.Category)
	if rec.Remapped {
		category += s.render(colorMuted, false, fmt.Sprintf(" [réponse brute : %s]", rec.RawCategory))
	}
	fmt.Fprintf(sb, "    Catégorie : %s\n", category)
	fmt.Fprintf(sb, "    Verdict   : %s\n", s.verdict(rec.Verdict))
	if rec.VerdictText != "" {
		fmt.Fprintf(sb, "    Analyse   : %s\n", indent(rec.VerdictText, "                "))
	}
	for i, e := range rec.Evidence {
		label := "              "
		if i == 0 {
			label = "    Sources   :"
		}
		fmt.Fprintf(sb, "%s %s %s\n", label, e.Title, s.render(colorInfo, false, "<"+e.URL+">"))
	}
}

// StatsLine summarizes a run the way every report ends
func StatsLine(sum model.Summary) string {
	return fmt.Sprintf("STATISTIQUES: %d réussites, %d erreurs sur %d analyses", sum.Successes, sum.Errors, sum.Total)
}

func indent(text, prefix string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", "\n"+prefix)
}
