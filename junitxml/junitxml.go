// Package junitxml parses JUnit-style XML test reports.
package junitxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const rootElementName = "testsuite"

// ErrNotTestSuite is returned by ParseSuite for well-formed XML documents whose
// root element is not <testsuite>. Callers treat it as a skip signal rather
// than a failure.
var ErrNotTestSuite = errors.New("root element is not 'testsuite'")

// TestSuite is one parsed report file.
type TestSuite struct {
	Name        string
	TimeSeconds float64
	Tests       int
	Errors      int
	Skipped     int
	Failures    int
	TestCases   []TestCase
}

// TestCase is a single <testcase> element. The outcome slices keep document
// order and multiplicity: a case can carry several <failure> children and all
// of them are reported. Retry-style children (rerunFailure, flakyFailure,
// rerunError, flakyError) are not mapped.
type TestCase struct {
	ClassName   string
	Name        string
	TimeSeconds float64
	Skipped     []Outcome
	Failures    []Outcome
	Errors      []Outcome
	SystemOut   []string
	SystemErr   []string
}

// Outcome is a <skipped>, <failure> or <error> child: a short message
// attribute plus an optional text body, typically a stack trace.
type Outcome struct {
	Message string
	Body    string
}

// SimpleClassName returns the class name with its package prefix removed.
func (c TestCase) SimpleClassName() string {
	if idx := strings.LastIndex(c.ClassName, "."); idx >= 0 {
		return c.ClassName[idx+1:]
	}
	return c.ClassName
}

// Noteworthy reports whether the case has any skipped, failure or error child
// and therefore appears in the detail section of a report.
func (c TestCase) Noteworthy() bool {
	return len(c.Skipped)+len(c.Failures)+len(c.Errors) > 0
}

// HasSkipped reports whether the case was skipped at least once.
func (c TestCase) HasSkipped() bool {
	return len(c.Skipped) > 0
}

// NoteworthyCases returns the cases worth detailing, in document order.
func (s TestSuite) NoteworthyCases() []TestCase {
	var cases []TestCase
	for _, c := range s.TestCases {
		if c.Noteworthy() {
			cases = append(cases, c)
		}
	}
	return cases
}

// PackageName returns the package portion of a dot-separated suite name, that
// is everything before the last dot. Names without a dot yield "".
func PackageName(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[:idx]
	}
	return ""
}

type rootName struct {
	XMLName xml.Name
}

type suiteXML struct {
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Tests     string        `xml:"tests,attr"`
	Errors    string        `xml:"errors,attr"`
	Skipped   string        `xml:"skipped,attr"`
	Failures  string        `xml:"failures,attr"`
	TestCases []testCaseXML `xml:"testcase"`
}

type testCaseXML struct {
	ClassName string       `xml:"classname,attr"`
	Name      string       `xml:"name,attr"`
	Time      string       `xml:"time,attr"`
	Skipped   []outcomeXML `xml:"skipped"`
	Failures  []outcomeXML `xml:"failure"`
	Errors    []outcomeXML `xml:"error"`
	SystemOut []string     `xml:"system-out"`
	SystemErr []string     `xml:"system-err"`
}

type outcomeXML struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

// ParseSuite decodes a single JUnit XML report. Malformed XML yields a plain
// error; a well-formed document with a different root element yields an error
// wrapping ErrNotTestSuite so callers can skip the file. Numeric attributes
// that are absent, empty or malformed count as 0.
func ParseSuite(content []byte) (TestSuite, error) {
	var root rootName
	if err := xml.Unmarshal(content, &root); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse XML: %w", err)
	}
	if root.XMLName.Local != rootElementName {
		return TestSuite{}, fmt.Errorf("%w: <%s>", ErrNotTestSuite, root.XMLName.Local)
	}

	var raw suiteXML
	if err := xml.Unmarshal(content, &raw); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse XML: %w", err)
	}

	suite := TestSuite{
		Name:        raw.Name,
		TimeSeconds: floatAttr(raw.Time),
		Tests:       intAttr(raw.Tests),
		Errors:      intAttr(raw.Errors),
		Skipped:     intAttr(raw.Skipped),
		Failures:    intAttr(raw.Failures),
	}
	for _, rawCase := range raw.TestCases {
		suite.TestCases = append(suite.TestCases, TestCase{
			ClassName:   rawCase.ClassName,
			Name:        rawCase.Name,
			TimeSeconds: floatAttr(rawCase.Time),
			Skipped:     outcomes(rawCase.Skipped),
			Failures:    outcomes(rawCase.Failures),
			Errors:      outcomes(rawCase.Errors),
			SystemOut:   rawCase.SystemOut,
			SystemErr:   rawCase.SystemErr,
		})
	}
	return suite, nil
}

func outcomes(raw []outcomeXML) []Outcome {
	var out []Outcome
	for _, o := range raw {
		out = append(out, Outcome{Message: o.Message, Body: o.Body})
	}
	return out
}

func intAttr(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

func floatAttr(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
