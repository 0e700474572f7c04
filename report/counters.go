// Package report aggregates JUnit test counters per package and renders their
// badge and summary-table Markdown.
package report

import (
	"fmt"
	"net/url"
	"strings"

	"junitmd/junitxml"
)

// TableHeader is the two-line header of the summary table.
const TableHeader = "|Package|Passed|Failed|Skipped|Time (min:sec)|\n|:---|---:|---:|---:|---:|"

// Counters accumulates test totals for one package or for a whole run.
type Counters struct {
	Module     string
	TimeMillis int64
	Tests      int
	Errors     int
	Skipped    int
	Failures   int
}

// AddSuite folds one parsed suite into the counters.
func (c *Counters) AddSuite(suite junitxml.TestSuite) {
	c.TimeMillis += int64(suite.TimeSeconds * 1000)
	c.Tests += suite.Tests
	c.Errors += suite.Errors
	c.Skipped += suite.Skipped
	c.Failures += suite.Failures
}

// AddCounters folds another counter set into this one. Folding is order
// independent.
func (c *Counters) AddCounters(other Counters) {
	c.TimeMillis += other.TimeMillis
	c.Tests += other.Tests
	c.Errors += other.Errors
	c.Skipped += other.Skipped
	c.Failures += other.Failures
}

// Passed derives the pass count from the recorded totals.
func (c Counters) Passed() int {
	return c.Tests - c.Errors - c.Failures - c.Skipped
}

// ErrorsAndFailures is the combined problem count shown in the Failed column.
func (c Counters) ErrorsAndFailures() int {
	return c.Errors + c.Failures
}

// BadgeMarkdown renders the shields.io badge line for these counters.
func (c Counters) BadgeMarkdown() string {
	time := FormatTimeMillis(c.TimeMillis)
	label := fmt.Sprintf("tests-%d ✅ | %d ❌ | %d ⏭ | %s ⏱️-white",
		c.Passed(), c.ErrorsAndFailures(), c.Skipped, time)
	return fmt.Sprintf("![Test results: %d passed, %d failed, %d skipped, time: %s](https://img.shields.io/badge/%s)",
		c.Passed(), c.ErrorsAndFailures(), c.Skipped, time, urlEncode(label))
}

// TableRow renders one summary-table row. Zero counts leave their cell empty;
// the package name links to its detail section when not every test passed.
func (c Counters) TableRow(anchorSuffix string) string {
	name := c.Module
	if c.Passed() != c.Tests {
		name = "[" + c.Module + "](#" + c.Module + anchorSuffix + ")"
	}
	return "|" + name +
		"|" + countCell(c.Passed(), "✅") +
		"|" + countCell(c.ErrorsAndFailures(), "❌") +
		"|" + countCell(c.Skipped, "⏭️") +
		"|" + FormatTimeMillis(c.TimeMillis) + " ⏱️|"
}

func countCell(count int, emoji string) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf("%d %s", count, emoji)
}

func urlEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
