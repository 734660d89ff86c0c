package roster

import (
	"slices"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// ResolveCoverage 计算员工技能对所需技能的覆盖情况，missing = required - available
func ResolveCoverage(required, available []int64) *domain.SkillCoverage {
	requiredSet := dedupeSorted(required)
	availableSet := dedupeSorted(available)

	missing := make([]int64, 0)
	for _, id := range requiredSet {
		if !slices.Contains(availableSet, id) {
			missing = append(missing, id)
		}
	}

	return &domain.SkillCoverage{
		Required:     requiredSet,
		Available:    availableSet,
		Missing:      missing,
		FullyCovered: len(missing) == 0,
	}
}

func dedupeSorted(ids []int64) []int64 {
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
