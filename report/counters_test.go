package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"junitmd/junitxml"
)

func Test_GivenCounters_WhenPassed_ThenDerivesTestsMinusProblemsMinusSkips(t *testing.T) {
	tests := []struct {
		name     string
		counters Counters
		want     int
	}{
		{"all passing", Counters{Tests: 4}, 4},
		{"mixed outcomes", Counters{Tests: 10, Errors: 1, Failures: 2, Skipped: 3}, 4},
		{"overcounted problems go negative", Counters{Tests: 1, Failures: 2}, -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.counters.Passed())
			assert.Equal(t, test.counters.Errors+test.counters.Failures, test.counters.ErrorsAndFailures())
		})
	}
}

func Test_GivenTwoCounterSets_WhenAddCountersInEitherOrder_ThenTotalsMatch(t *testing.T) {
	// Given
	a := Counters{TimeMillis: 1500, Tests: 5, Errors: 1, Skipped: 2, Failures: 1}
	b := Counters{TimeMillis: 300, Tests: 3, Failures: 2}

	// When
	ab := Counters{Module: "aggregated"}
	ab.AddCounters(a)
	ab.AddCounters(b)

	ba := Counters{Module: "aggregated"}
	ba.AddCounters(b)
	ba.AddCounters(a)

	// Then
	assert.Equal(t, ab, ba)
	assert.Equal(t, 8, ab.Tests)
	assert.Equal(t, int64(1800), ab.TimeMillis)
}

func Test_GivenSuite_WhenAddSuite_ThenSecondsBecomeTruncatedMillis(t *testing.T) {
	// Given
	counters := Counters{Module: "com.example"}

	// When
	counters.AddSuite(junitxml.TestSuite{TimeSeconds: 1.5, Tests: 2})
	counters.AddSuite(junitxml.TestSuite{TimeSeconds: 30.0, Tests: 1, Failures: 1})

	// Then
	assert.Equal(t, int64(31500), counters.TimeMillis)
	assert.Equal(t, 3, counters.Tests)
	assert.Equal(t, 1, counters.Failures)
}

func Test_GivenAllZeroCounters_WhenBadgeMarkdown_ThenRendersZeroBadge(t *testing.T) {
	// Given
	counters := Counters{Module: "aggregated"}

	// When
	badge := counters.BadgeMarkdown()

	// Then
	assert.Equal(t,
		"![Test results: 0 passed, 0 failed, 0 skipped, time: 0:00.000]"+
			"(https://img.shields.io/badge/tests-0%20%E2%9C%85%20%7C%200%20%E2%9D%8C%20%7C%200%20%E2%8F%AD%20%7C%200%3A00.000%20%E2%8F%B1%EF%B8%8F-white)",
		badge)
}

func Test_GivenMixedCounters_WhenBadgeMarkdown_ThenLabelIsPercentEncoded(t *testing.T) {
	// Given
	counters := Counters{Module: "aggregated", TimeMillis: 61234, Tests: 10, Errors: 1, Failures: 1, Skipped: 2}

	// When
	badge := counters.BadgeMarkdown()

	// Then
	assert.Contains(t, badge, "![Test results: 6 passed, 2 failed, 2 skipped, time: 1:01.234](https://img.shields.io/badge/")
	assert.Contains(t, badge, "tests-6%20%E2%9C%85")
	assert.Contains(t, badge, "%7C%202%20%E2%9D%8C")
	assert.Contains(t, badge, "%7C%201%3A01.234%20%E2%8F%B1%EF%B8%8F-white")
	assert.NotContains(t, badge, "+")
}

func Test_GivenCounters_WhenTableRow_ThenZeroCountCellsStayEmpty(t *testing.T) {
	tests := []struct {
		name     string
		counters Counters
		want     string
	}{
		{
			"all passed, no link",
			Counters{Module: "com.example", Tests: 3, TimeMillis: 500},
			"|com.example|3 ✅|||0:00.500 ⏱️|",
		},
		{
			"failures link to the detail section",
			Counters{Module: "com.example", Tests: 3, Failures: 1, TimeMillis: 500},
			"|[com.example](#com.example-cafe)|2 ✅|1 ❌||0:00.500 ⏱️|",
		},
		{
			"only skips, passed cell empty",
			Counters{Module: "com.example", Tests: 2, Skipped: 2},
			"|[com.example](#com.example-cafe)|||2 ⏭️|0:00.000 ⏱️|",
		},
		{
			"errors count toward the failed column",
			Counters{Module: "com.example", Tests: 4, Errors: 2, TimeMillis: 61234},
			"|[com.example](#com.example-cafe)|2 ✅|2 ❌||1:01.234 ⏱️|",
		},
		{
			"negative derived pass count stays empty",
			Counters{Module: "com.example", Tests: 1, Failures: 2},
			"|[com.example](#com.example-cafe)||2 ❌||0:00.000 ⏱️|",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.counters.TableRow("-cafe"))
		})
	}
}
