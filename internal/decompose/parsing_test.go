package decompose

import (
	"strings"
	"testing"
)

func TestParseStepsResponse_StrictJSON(t *testing.T) {
	raw := `{"steps":[{"content":"收集资料","encouragement":"加油！"},{"content":"制定计划","encouragement":"好样的！"}]}`

	steps, source, err := parseStepsResponse(raw)
	if err != nil {
		t.Fatalf("parseStepsResponse() error: %v", err)
	}
	if source != SourceParsed {
		t.Errorf("source = %v, want SourceParsed", source)
	}
	if len(steps) != 2 {
		t.Fatalf("len(steps) = %d, want 2", len(steps))
	}
	if steps[0].Content != "收集资料" || steps[0].Encouragement != "加油！" {
		t.Errorf("steps[0] = %+v, want parsed content", steps[0])
	}
}

func TestParseStepsResponse_ExtractedJSON(t *testing.T) {
	raw := "好的，这是你的计划：\n" +
		`{"steps":[{"content":"收集资料","encouragement":"加油！"}]}` +
		"\n祝你顺利！"

	steps, source, err := parseStepsResponse(raw)
	if err != nil {
		t.Fatalf("parseStepsResponse() error: %v", err)
	}
	if source != SourceExtracted {
		t.Errorf("source = %v, want SourceExtracted", source)
	}
	if len(steps) != 1 || steps[0].Content != "收集资料" {
		t.Errorf("steps = %+v, want the embedded object parsed", steps)
	}
}

func TestParseStepsResponse_TextFallback(t *testing.T) {
	raw := "1. 收集资料\n2、制定计划\n3) 开始练习\n- 复盘总结\n步骤5：坚持一周\n\n最后一行没有编号"

	steps, source, err := parseStepsResponse(raw)
	if err != nil {
		t.Fatalf("parseStepsResponse() error: %v", err)
	}
	if source != SourceText {
		t.Errorf("source = %v, want SourceText", source)
	}
	if len(steps) != 6 {
		t.Fatalf("len(steps) = %d, want 6 salvaged lines", len(steps))
	}

	want := []string{"收集资料", "制定计划", "开始练习", "复盘总结", "坚持一周", "最后一行没有编号"}
	for i, w := range want {
		if steps[i].Content != w {
			t.Errorf("steps[%d].Content = %q, want %q (marker stripped)", i, steps[i].Content, w)
		}
		if steps[i].Encouragement == "" {
			t.Errorf("steps[%d] has no canned encouragement", i)
		}
	}
}

func TestParseStepsResponse_TextFallbackPadsToSix(t *testing.T) {
	raw := "收集资料\n制定计划"

	steps, source, err := parseStepsResponse(raw)
	if err != nil {
		t.Fatalf("parseStepsResponse() error: %v", err)
	}
	if source != SourceText {
		t.Errorf("source = %v, want SourceText", source)
	}
	if len(steps) != 6 {
		t.Fatalf("len(steps) = %d, want 2 lines padded to 6", len(steps))
	}
	if steps[2].Content != paddingSteps[0].Content {
		t.Errorf("steps[2] = %q, want first padding step", steps[2].Content)
	}
}

func TestParseStepsResponse_NothingUsable(t *testing.T) {
	_, _, err := parseStepsResponse("   \n\n  ")
	if err == nil {
		t.Fatal("parseStepsResponse() error = nil, want parse error")
	}
}

func TestParseStepsJSON_RejectsMissingStepsArray(t *testing.T) {
	if _, ok := parseStepsJSON(`{"plan":"x"}`); ok {
		t.Error("parseStepsJSON() accepted object without steps array")
	}
	if _, ok := parseStepsJSON(`{"steps":[]}`); ok {
		t.Error("parseStepsJSON() accepted empty steps array")
	}
	if _, ok := parseStepsJSON(`{"steps":[{"content":"  "}]}`); ok {
		t.Error("parseStepsJSON() accepted blank-only steps")
	}
}

func TestParseStepsJSON_FillsMissingEncouragement(t *testing.T) {
	steps, ok := parseStepsJSON(`{"steps":[{"content":"收集资料"}]}`)
	if !ok {
		t.Fatal("parseStepsJSON() = false, want accepted")
	}
	if steps[0].Encouragement == "" {
		t.Error("expected a canned encouragement for the blank field")
	}
}

func TestFinalizeSteps_TitleDerivation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"full-width colon", "明确目标：学习React开发", "明确目标"},
		{"short content verbatim", "收集资料", "收集资料"},
		{"long content truncated", strings.Repeat("深", 25), strings.Repeat("深", 20) + "..."},
		{"exactly twenty runes", strings.Repeat("深", 20), strings.Repeat("深", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveTitle(tt.content); got != tt.want {
				t.Errorf("deriveTitle(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestFinalizeSteps_Uniform(t *testing.T) {
	raw := []rawStep{
		{Content: "明确目标：写一本小说", Encouragement: "A"},
		{Content: "收集资料", Encouragement: "B"},
	}

	steps := finalizeSteps(raw)
	if len(steps) != 2 {
		t.Fatalf("len(steps) = %d, want 2", len(steps))
	}
	if steps[0].ID != "step-1" || steps[1].ID != "step-2" {
		t.Errorf("IDs = %q, %q, want sequential step-N", steps[0].ID, steps[1].ID)
	}
	for i, s := range steps {
		if s.Order != i+1 {
			t.Errorf("steps[%d].Order = %d, want %d", i, s.Order, i+1)
		}
		if s.Description != s.Content {
			t.Errorf("steps[%d].Description = %q, want content copy", i, s.Description)
		}
		if s.CompletedAt != nil || s.Completed {
			t.Errorf("steps[%d] should start uncompleted", i)
		}
	}
}

func TestFallbackSteps(t *testing.T) {
	steps := fallbackSteps("学习React开发")

	if len(steps) != 9 {
		t.Fatalf("len(steps) = %d, want 9", len(steps))
	}
	if !strings.Contains(steps[0].Content, "学习React开发") {
		t.Errorf("steps[0].Content = %q, want goal embedded verbatim", steps[0].Content)
	}
	for i, s := range steps {
		if s.Encouragement == "" {
			t.Errorf("steps[%d] has no encouragement", i)
		}
	}
}
