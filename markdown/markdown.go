// Package markdown renders an aggregated test summary as a layered Markdown
// document: badge, collapsible summary table and per-package detail sections.
package markdown

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"junitmd/junitxml"
	"junitmd/report"
)

const truncateMax = 8 * 1024

// Renderer writes the Markdown document for a summary. The anchor suffix makes
// anchor ids unique per run, so several generated reports can land on one CI
// summary page without colliding.
type Renderer struct {
	anchorSuffix string
}

func NewRenderer(anchorSuffix string) Renderer {
	return Renderer{anchorSuffix: anchorSuffix}
}

// NewAnchorSuffix returns a fresh anchor suffix for one run.
func NewAnchorSuffix() string {
	return "-" + strconv.FormatUint(rand.Uint64(), 16)
}

// RenderReport writes the whole document: top anchor, badge, the collapsible
// summary table in severity order and the per-package detail sections in name
// order.
func (r Renderer) RenderReport(w io.Writer, summary *report.Summary) error {
	var sb strings.Builder

	sb.WriteString(`<a id="` + r.topAnchor() + `"></a>` + "\n")
	sb.WriteString(summary.Aggregated().BadgeMarkdown() + "\n")
	sb.WriteString("\n")
	sb.WriteString("<details>\n")
	sb.WriteString("<summary>Click here for details</summary>\n")
	sb.WriteString("\n")
	sb.WriteString(report.TableHeader + "\n")

	for _, pkg := range summary.SortedBySeverity() {
		sb.WriteString(pkg.Counters.TableRow(r.anchorSuffix) + "\n")
	}

	for _, pkg := range summary.SortedByName() {
		if len(pkg.TestCases) == 0 {
			continue
		}

		sb.WriteString(`<a id="` + pkg.Counters.Module + r.anchorSuffix + `"></a>` + "\n")
		sb.WriteString("## " + pkg.Counters.Module + "\n")
		for _, testCase := range failuresBeforeSkips(pkg.TestCases) {
			sb.WriteString(r.testCaseMarkdown(testCase) + "\n")
		}
	}

	sb.WriteString("</details>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r Renderer) topAnchor() string {
	return "top" + r.anchorSuffix
}

// failuresBeforeSkips orders a package's detail fragments: failing and erroring
// cases first, skipped cases after, keeping the encounter order within each
// group.
func failuresBeforeSkips(cases []junitxml.TestCase) []junitxml.TestCase {
	ordered := make([]junitxml.TestCase, 0, len(cases))
	for _, c := range cases {
		if !c.HasSkipped() {
			ordered = append(ordered, c)
		}
	}
	for _, c := range cases {
		if c.HasSkipped() {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

func (r Renderer) testCaseMarkdown(testCase junitxml.TestCase) string {
	var sb strings.Builder

	headerEmoji := "❌"
	if testCase.HasSkipped() {
		headerEmoji = "⏭️"
	}
	sb.WriteString("#### " + headerEmoji + "&nbsp;" + testCase.SimpleClassName() + "." + testCase.Name + "\n")

	timeMillis := int64(testCase.TimeSeconds * 1000)
	for _, outcome := range testCase.Skipped {
		appendOutcome(&sb, outcome, timeMillis)
	}
	for _, outcome := range testCase.Failures {
		appendOutcome(&sb, outcome, timeMillis)
	}
	for _, outcome := range testCase.Errors {
		appendOutcome(&sb, outcome, timeMillis)
	}

	for _, text := range testCase.SystemOut {
		appendStreamBlock(&sb, "stdout", text)
	}
	for _, text := range testCase.SystemErr {
		appendStreamBlock(&sb, "stderr", text)
	}

	sb.WriteString("\n[🔝](#" + r.topAnchor() + ")\n")
	sb.WriteString("\n----\n")

	return sb.String()
}

func appendOutcome(sb *strings.Builder, outcome junitxml.Outcome, timeMillis int64) {
	message := outcome.Message
	// A skip caused by a failed assumption carries no message attribute. Use
	// the first line of the body instead.
	if strings.TrimSpace(message) == "" {
		message = firstLine(outcome.Body)
	}

	sb.WriteString("```\n" + message + "\n```\n")

	if timeMillis > 0 {
		sb.WriteString(report.FormatTimeMillis(timeMillis) + " ⏱️\n")
	}

	if body := strings.TrimSpace(outcome.Body); body != "" {
		sb.WriteString("<details>\n<summary>Stack trace</summary>\n\n```\n")
		sb.WriteString(truncate(body))
		sb.WriteString("\n```\n\n</details>\n")
	}
}

func appendStreamBlock(sb *strings.Builder, title, text string) {
	sb.WriteString("<details>\n<summary>" + title + "</summary>\n\n```\n")
	sb.WriteString(truncate(text))
	sb.WriteString("\n```\n\n</details>\n")
}

// truncate keeps texts of up to 8192 characters as they are and shortens
// longer ones to their first and last 4096 characters around a skip marker.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= truncateMax {
		return s
	}

	return "[too long; skipping middle]\n" +
		string(runes[:truncateMax/2]) + "\n[...skipping...]\n" + string(runes[len(runes)-truncateMax/2:])
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}
