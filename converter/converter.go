package converter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"

	"junitmd/junitxml"
	"junitmd/report"
)

// Exit codes of the CLI.
const (
	ExitCodeSuccess     = 0
	ExitCodeError       = 1
	ExitCodeTestFailure = 2
	ExitCodeNoTests     = 3
)

// ReportFinder locates report files under a root directory.
type ReportFinder interface {
	FindReports(rootDir string) ([]string, error)
}

// ReportRenderer writes the Markdown document for an aggregated summary.
type ReportRenderer interface {
	RenderReport(w io.Writer, summary *report.Summary) error
}

// Input is the raw CLI input.
type Input struct {
	RootDir string
}

// Config is the processed input the conversion runs with.
type Config struct {
	RootDir string
}

// Result carries the aggregated counters of one run.
type Result struct {
	Aggregated report.Counters
}

// ExitCode maps the aggregated counters to the process exit code. Failures
// take precedence over the no-tests outcome.
func (r Result) ExitCode() int {
	if r.Aggregated.ErrorsAndFailures() != 0 {
		return ExitCodeTestFailure
	}
	if r.Aggregated.Tests == 0 {
		return ExitCodeNoTests
	}
	return ExitCodeSuccess
}

// MarkdownConverter turns the JUnit XML reports under a directory into one
// Markdown document.
type MarkdownConverter struct {
	finder       ReportFinder
	renderer     ReportRenderer
	pathModifier pathutil.PathModifier
	pathChecker  pathutil.PathChecker
}

func NewMarkdownConverter(finder ReportFinder, renderer ReportRenderer, pathModifier pathutil.PathModifier, pathChecker pathutil.PathChecker) MarkdownConverter {
	return MarkdownConverter{
		finder:       finder,
		renderer:     renderer,
		pathModifier: pathModifier,
		pathChecker:  pathChecker,
	}
}

// ProcessConfig resolves the root directory to an absolute path. A missing
// directory is only warned about: the run continues and ends with the no-tests
// exit code.
func (c MarkdownConverter) ProcessConfig(input Input) (Config, error) {
	rootDir, err := c.pathModifier.AbsPath(input.RootDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve root directory %s: %w", input.RootDir, err)
	}

	if exists, err := c.pathChecker.IsDirExists(rootDir); err != nil {
		log.Warnf("Failed to check root directory %s: %s", rootDir, err)
	} else if !exists {
		log.Warnf("Root directory %s does not exist.", rootDir)
	}

	return Config{RootDir: rootDir}, nil
}

// Run discovers, parses and aggregates the reports, then writes the Markdown
// document to out. Files whose root element is not <testsuite> are skipped
// with a warning; an unreadable file or malformed XML aborts the run.
func (c MarkdownConverter) Run(cfg Config, out io.Writer) (Result, error) {
	reportFiles, err := c.finder.FindReports(cfg.RootDir)
	if err != nil {
		return Result{}, fmt.Errorf("failed to search %s for reports: %w", cfg.RootDir, err)
	}
	log.Debugf("Found %d report files under %s.", len(reportFiles), cfg.RootDir)

	summary := report.NewSummary()
	for _, pth := range reportFiles {
		content, err := fileutil.ReadBytesFromFile(pth)
		if err != nil {
			return Result{}, fmt.Errorf("failed to read %s: %w", pth, err)
		}

		suite, err := junitxml.ParseSuite(content)
		if err != nil {
			if errors.Is(err, junitxml.ErrNotTestSuite) {
				log.Warnf("Skipping %s because it is not an XML document with a root named 'testsuite'.", filepath.Base(pth))
				continue
			}
			return Result{}, fmt.Errorf("failed to parse %s: %w", pth, err)
		}

		summary.AddSuite(suite)
	}

	if err := c.renderer.RenderReport(out, summary); err != nil {
		return Result{}, err
	}

	return Result{Aggregated: summary.Aggregated()}, nil
}
