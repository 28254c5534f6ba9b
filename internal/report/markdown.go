package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders the results as a Markdown document
func Markdown(results Results) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Rapport de vérification (%s)\n\n", results.Mode)
	fmt.Fprintf(&sb, "_Généré le %s_\n\n", results.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	sb.WriteString("| # | Affirmation | Catégorie | Verdict |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, rec := range results.Records {
		verdict := rec.Verdict
		if !rec.IsSuccess() {
			verdict = "ERREUR"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", rec.Index+1, cell(rec.Claim), rec.Category, verdict)
	}
	sb.WriteString("\n")

	for _, rec := range results.Records {
		fmt.Fprintf(&sb, "## %d. %s\n\n", rec.Index+1, rec.Claim)
		if !rec.IsSuccess() {
			fmt.Fprintf(&sb, "**Erreur (%s)** : %s\n\n", rec.Stage, rec.Error)
			continue
		}
		fmt.Fprintf(&sb, "- **Catégorie** : %s (`%s`)\n", rec.Category.Description(), rec.Category)
		if rec.Remapped {
			fmt.Fprintf(&sb, "- **Réponse brute du classifieur** : `%s`\n", rec.RawCategory)
		}
		fmt.Fprintf(&sb, "- **Verdict** : %s\n", orDash(rec.Verdict))
		if rec.Model != "" {
			fmt.Fprintf(&sb, "- **Modèle** : %s\n", rec.Model)
		}
		sb.WriteString("\n")
		if rec.VerdictText != "" {
			sb.WriteString("> ")
			sb.WriteString(strings.ReplaceAll(strings.TrimSpace(rec.VerdictText), "\n", "\n> "))
			sb.WriteString("\n\n")
		}
		if len(rec.Evidence) > 0 {
			sb.WriteString("Sources :\n\n")
			for _, e := range rec.Evidence {
				fmt.Fprintf(&sb, "- [%s](%s)\n", orDash(e.Title), e.URL)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("---\n\n")
	sb.WriteString(StatsLine(results.Summary))
	sb.WriteString("\n")
	return sb.String()
}

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; color: #101F38; }
table { border-collapse: collapse; }
td, th { border: 1px solid #dce0e5; padding: .3rem .6rem; }
blockquote { border-left: 4px solid #8BC34A; margin-left: 0; padding-left: 1rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML renders the Markdown report to a standalone HTML page
func HTML(results Results) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(results)), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{
		Title: "Rapport de vérification (" + results.Mode + ")",
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return out.String(), nil
}

func cell(text string) string {
	return strings.ReplaceAll(model.Truncate(text, 80), "|", "\\|")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
