package decompose

import (
	"fmt"
	"strings"

	"github.com/stepmate/stepmate/internal/todo"
)

// finalizeSteps applies uniform post-processing to a raw step list,
// whichever tier produced it: sequential identifiers, derived titles,
// content copied into the description, 1-based order, and the duration and
// difficulty estimates.
func finalizeSteps(raw []rawStep) []todo.Step {
	steps := make([]todo.Step, len(raw))
	for i, r := range raw {
		steps[i] = todo.Step{
			ID:            fmt.Sprintf("step-%d", i+1),
			Title:         deriveTitle(r.Content),
			Content:       r.Content,
			Description:   r.Content,
			Encouragement: r.Encouragement,
			Completed:     false,
			Order:         i + 1,
			Duration:      EstimateStepDuration(r.Content),
			Difficulty:    EstimateStepDifficulty(r.Content),
		}
	}
	return steps
}

// deriveTitle shortens step content into a title: the text before the first
// full-width colon when one is present, otherwise the first 20 runes with
// an ellipsis when the content is longer than that.
func deriveTitle(content string) string {
	if idx := strings.Index(content, "："); idx >= 0 {
		return content[:idx]
	}
	runes := []rune(content)
	if len(runes) > 20 {
		return string(runes[:20]) + "..."
	}
	return content
}
