package decompose

import (
	"strings"

	"github.com/stepmate/stepmate/internal/todo"
)

// Keyword tiers for the duration estimate. Matching is case-insensitive
// substring search; the first matching tier wins, checked quick, then
// complex, then medium.
var (
	quickKeywords = []string{
		"整理", "收集", "准备", "选择", "确认",
		"organize", "collect", "prepare", "choose", "confirm",
	}
	complexKeywords = []string{
		"开发", "设计", "创建", "编写", "深入", "详细",
		"develop", "design", "create", "write",
	}
	mediumKeywords = []string{
		"分析", "研究", "学习", "练习", "制定",
		"analyze", "research", "study", "practice", "plan",
	}
)

// Keyword tiers for the difficulty estimate, checked hard, then medium,
// then easy; first match wins.
var (
	hardKeywords = []string{
		"开发", "设计", "架构", "算法", "深入", "攻克",
		"develop", "design", "architect", "algorithm",
	}
	mediumDifficultyKeywords = []string{
		"分析", "研究", "练习", "制定", "实现", "编写",
		"analyze", "research", "practice", "implement",
	}
	easyKeywords = []string{
		"整理", "收集", "准备", "选择", "确认", "了解", "回顾",
		"organize", "collect", "prepare", "choose", "confirm",
	}
)

// inDepthMarkers back the length-based difficulty fallback for long steps.
var inDepthMarkers = []string{"深入", "详细", "复杂", "in-depth", "detailed", "complex"}

// containsAny reports whether lower contains any of the keywords.
// Keywords are stored lowercase; the caller lowers the content once.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// EstimateStepDuration estimates a step's duration in minutes from its
// content alone. The estimate is deterministic and never below 10.
//
// The base scales with content length in runes (15/20/30/45 minutes at
// <=30/<=60/<=100/longer); quick keywords subtract 5 with a floor of 10,
// otherwise complex keywords add 15, otherwise medium keywords add 5.
func EstimateStepDuration(content string) int {
	length := len([]rune(content))

	base := 45
	switch {
	case length <= 30:
		base = 15
	case length <= 60:
		base = 20
	case length <= 100:
		base = 30
	}

	lower := strings.ToLower(content)
	switch {
	case containsAny(lower, quickKeywords):
		base -= 5
		if base < 10 {
			base = 10
		}
	case containsAny(lower, complexKeywords):
		base += 15
	case containsAny(lower, mediumKeywords):
		base += 5
	}

	return base
}

// EstimateStepDifficulty estimates a step's difficulty from its content.
// Keyword sets are checked hard, medium, easy; when none match, a length
// rule decides: hard for content over 80 runes carrying an in-depth marker,
// medium over 50 runes, easy otherwise.
func EstimateStepDifficulty(content string) todo.Difficulty {
	lower := strings.ToLower(content)

	switch {
	case containsAny(lower, hardKeywords):
		return todo.DifficultyHard
	case containsAny(lower, mediumDifficultyKeywords):
		return todo.DifficultyMedium
	case containsAny(lower, easyKeywords):
		return todo.DifficultyEasy
	}

	length := len([]rune(content))
	switch {
	case length > 80 && containsAny(lower, inDepthMarkers):
		return todo.DifficultyHard
	case length > 50:
		return todo.DifficultyMedium
	default:
		return todo.DifficultyEasy
	}
}
