package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCoverageFullyCovered(t *testing.T) {
	coverage := ResolveCoverage([]int64{1, 2}, []int64{1, 2, 3})

	assert.True(t, coverage.FullyCovered)
	assert.Empty(t, coverage.Missing)
	assert.Equal(t, []int64{1, 2}, coverage.Required)
}

func TestResolveCoveragePartialGap(t *testing.T) {
	// 班次要求技能 {A,B}，员工只有 {A}
	coverage := ResolveCoverage([]int64{1, 2}, []int64{1})

	assert.False(t, coverage.FullyCovered)
	assert.Equal(t, []int64{2}, coverage.Missing)
}

func TestResolveCoverageEmptyRequired(t *testing.T) {
	coverage := ResolveCoverage(nil, []int64{1, 2})

	assert.True(t, coverage.FullyCovered)
	assert.Empty(t, coverage.Required)
	assert.Empty(t, coverage.Missing)
}

func TestResolveCoverageDedupesAndSorts(t *testing.T) {
	coverage := ResolveCoverage([]int64{3, 1, 3, 2, 1}, []int64{2, 2})

	assert.Equal(t, []int64{1, 2, 3}, coverage.Required)
	assert.Equal(t, []int64{2}, coverage.Available)
	assert.Equal(t, []int64{1, 3}, coverage.Missing)
	assert.False(t, coverage.FullyCovered)
}

func TestResolveCoverageFullyCoveredIffNoMissing(t *testing.T) {
	cases := [][2][]int64{
		{{1}, {1}},
		{{1}, {}},
		{{1, 2, 3}, {3, 2, 1}},
		{{5}, {4}},
		{{}, {}},
	}

	for _, c := range cases {
		coverage := ResolveCoverage(c[0], c[1])
		assert.Equal(t, len(coverage.Missing) == 0, coverage.FullyCovered)
	}
}
