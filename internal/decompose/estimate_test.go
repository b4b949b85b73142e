package decompose

import (
	"strings"
	"testing"

	"github.com/stepmate/stepmate/internal/todo"
)

func TestEstimateStepDuration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"short neutral", "完成一件小事", 15},
		{"short quick keyword", "整理桌面上的文件", 10},
		{"short complex keyword", "设计一个页面布局", 30},
		{"short medium keyword", "分析目前的情况", 20},
		{"medium length neutral", strings.Repeat("做", 45), 20},
		{"medium length quick", "收集" + strings.Repeat("和", 40) + "相关的东西", 15},
		{"long neutral", strings.Repeat("做", 80), 30},
		{"very long neutral", strings.Repeat("做", 120), 45},
		{"very long complex", "开发" + strings.Repeat("功", 120), 60},
		{"quick wins over complex", "整理设计文档", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateStepDuration(tt.content); got != tt.want {
				t.Errorf("EstimateStepDuration(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestEstimateStepDuration_Deterministic(t *testing.T) {
	content := "深入研究相关领域的资料并做详细笔记"
	first := EstimateStepDuration(content)
	for i := 0; i < 10; i++ {
		if got := EstimateStepDuration(content); got != first {
			t.Fatalf("EstimateStepDuration() = %d on run %d, want stable %d", got, i, first)
		}
	}
}

func TestEstimateStepDuration_Floor(t *testing.T) {
	// Quick keyword on the shortest base still never dips below 10.
	if got := EstimateStepDuration("确认"); got < 10 {
		t.Errorf("EstimateStepDuration() = %d, want >= 10", got)
	}
}

func TestEstimateStepDuration_CaseInsensitive(t *testing.T) {
	if got := EstimateStepDuration("Prepare the workspace"); got != 10 {
		t.Errorf("EstimateStepDuration() = %d, want 10 for quick keyword", got)
	}
	if got := EstimateStepDuration("DESIGN the landing page"); got != 30 {
		t.Errorf("EstimateStepDuration() = %d, want 30 for complex keyword", got)
	}
}

func TestEstimateStepDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    todo.Difficulty
	}{
		{"hard keyword", "开发一个小程序", todo.DifficultyHard},
		{"medium keyword", "分析用户反馈", todo.DifficultyMedium},
		{"easy keyword", "整理书桌", todo.DifficultyEasy},
		{"hard beats medium", "设计并分析整体架构", todo.DifficultyHard},
		{"no keyword short", "喝一杯水", todo.DifficultyEasy},
		{"no keyword over fifty", strings.Repeat("走", 55), todo.DifficultyMedium},
		{"long with in-depth marker", strings.Repeat("走", 81) + "（复杂）", todo.DifficultyHard},
		{"long without marker", strings.Repeat("走", 85), todo.DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateStepDifficulty(tt.content); got != tt.want {
				t.Errorf("EstimateStepDifficulty(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
