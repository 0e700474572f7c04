package report

import (
	"sort"

	"junitmd/junitxml"
)

// defaultPackageName groups suites whose name carries no package portion.
const defaultPackageName = "default"

// PackageReport is the aggregate for one package: its counters plus the
// noteworthy cases collected for the detail section.
type PackageReport struct {
	Counters  Counters
	TestCases []junitxml.TestCase
}

// Summary aggregates parsed suites per package.
type Summary struct {
	packages map[string]*PackageReport
}

func NewSummary() *Summary {
	return &Summary{packages: map[string]*PackageReport{}}
}

// AddSuite merges a parsed suite into its package, keyed on the package
// portion of the suite name.
func (s *Summary) AddSuite(suite junitxml.TestSuite) {
	name := junitxml.PackageName(suite.Name)
	if name == "" {
		name = defaultPackageName
	}

	pkg, ok := s.packages[name]
	if !ok {
		pkg = &PackageReport{Counters: Counters{Module: name}}
		s.packages[name] = pkg
	}
	pkg.Counters.AddSuite(suite)
	pkg.TestCases = append(pkg.TestCases, suite.NoteworthyCases()...)
}

// SortedByName returns the package reports ordered by package name.
func (s *Summary) SortedByName() []*PackageReport {
	names := make([]string, 0, len(s.packages))
	for name := range s.packages {
		names = append(names, name)
	}
	sort.Strings(names)

	reports := make([]*PackageReport, 0, len(names))
	for _, name := range names {
		reports = append(reports, s.packages[name])
	}
	return reports
}

// SortedBySeverity returns the package reports in summary-table order:
// packages with failures or errors first, then packages with skips, then the
// rest, alphabetical within each group.
func (s *Summary) SortedBySeverity() []*PackageReport {
	reports := s.SortedByName()
	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i].Counters, reports[j].Counters
		if (a.ErrorsAndFailures() > 0) != (b.ErrorsAndFailures() > 0) {
			return a.ErrorsAndFailures() > 0
		}
		if (a.Skipped > 0) != (b.Skipped > 0) {
			return a.Skipped > 0
		}
		return false
	})
	return reports
}

// Aggregated folds every package into one grand total.
func (s *Summary) Aggregated() Counters {
	total := Counters{Module: "aggregated"}
	for _, pkg := range s.SortedByName() {
		total.AddCounters(pkg.Counters)
	}
	return total
}
