package decompose

import (
	"encoding/json"
	"math/rand"
	"regexp"
	"strings"

	"github.com/stepmate/stepmate/internal/errors"
)

// jsonObjectRe extracts the outermost brace-delimited substring from prose
// around the JSON the model was asked for.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// enumMarkerRe strips leading enumeration markers from salvaged text lines:
// "1." / "2、" / "3)" / "-" / "*" / "步骤1：" and similar.
var enumMarkerRe = regexp.MustCompile(`^\s*(?:第?[0-9]+[.、)）．:：]|[-*•·]|步骤\s*[0-9]+\s*[:：]?)\s*`)

// cannedEncouragements are paired with salvaged text lines, which carry no
// encouragement of their own.
var cannedEncouragements = []string{
	"加油，你一定可以的！",
	"坚持就是胜利！",
	"每完成一步都是进步！",
	"相信自己，慢慢来！",
	"你做得很棒，继续！",
	"一步一个脚印！",
}

// paddingSteps tops a too-short salvaged list up toward the six-step
// minimum. The list is fixed and ordered; once it is exhausted the result
// may still hold fewer than six steps, which is preserved behavior.
var paddingSteps = []rawStep{
	{Content: "回顾前面完成的内容，查漏补缺", Encouragement: "温故而知新！"},
	{Content: "整理学到的要点和经验", Encouragement: "整理是最好的复习！"},
	{Content: "规划下一阶段的行动", Encouragement: "未雨绸缪，赞！"},
	{Content: "检查并完善尚未满意的细节", Encouragement: "细节决定成败！"},
	{Content: "与朋友分享你的进展", Encouragement: "分享让成果加倍！"},
	{Content: "给自己一个小小的奖励", Encouragement: "你值得被奖励！"},
}

// minSteps is the step-count floor the padding tier aims for.
const minSteps = 6

// parseStepsResponse resolves the model's raw text through the three-tier
// parsing policy, in order of preference:
//
//  1. the full body parses as {"steps":[...]}
//  2. a brace-delimited JSON object extracted from the body parses
//  3. the body is split into lines, enumeration markers stripped, each
//     surviving line becoming one step with a canned encouragement, padded
//     from a fixed generic list when fewer than six lines survive
//
// It fails only when tier 3 also yields nothing usable.
func parseStepsResponse(raw string) ([]rawStep, Source, error) {
	if steps, ok := parseStepsJSON(raw); ok {
		return steps, SourceParsed, nil
	}

	if match := jsonObjectRe.FindString(raw); match != "" {
		if steps, ok := parseStepsJSON(match); ok {
			return steps, SourceExtracted, nil
		}
	}

	steps := parseStepsText(raw)
	if len(steps) == 0 {
		return nil, SourceText, errors.NewParseError("no usable lines in response", errors.ErrNoSteps).WithTier(3)
	}
	return steps, SourceText, nil
}

// parseStepsJSON attempts a strict parse of the steps envelope. Steps with
// blank content are dropped; an envelope without any usable step is
// rejected so the next tier gets a chance.
func parseStepsJSON(raw string) ([]rawStep, bool) {
	var envelope stepsEnvelope
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &envelope); err != nil {
		return nil, false
	}
	if envelope.Steps == nil {
		return nil, false
	}

	steps := make([]rawStep, 0, len(envelope.Steps))
	for _, s := range envelope.Steps {
		s.Content = strings.TrimSpace(s.Content)
		if s.Content == "" {
			continue
		}
		if strings.TrimSpace(s.Encouragement) == "" {
			s.Encouragement = pickEncouragement()
		}
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		return nil, false
	}
	return steps, true
}

// parseStepsText salvages steps from free text, one line each, padding the
// result toward minSteps from the fixed generic list.
func parseStepsText(raw string) []rawStep {
	var steps []rawStep
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = enumMarkerRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" || line == "{" || line == "}" {
			continue
		}
		steps = append(steps, rawStep{
			Content:       line,
			Encouragement: pickEncouragement(),
		})
	}

	// A response with nothing salvageable is reported upward instead of
	// being replaced by pure padding; the caller's goal-bearing generic
	// plan is strictly more useful than six context-free filler steps.
	if len(steps) == 0 {
		return nil
	}

	for i := 0; len(steps) < minSteps && i < len(paddingSteps); i++ {
		steps = append(steps, paddingSteps[i])
	}

	return steps
}

// pickEncouragement returns a pseudo-randomly chosen canned encouragement.
func pickEncouragement() string {
	return cannedEncouragements[rand.Intn(len(cannedEncouragements))]
}
