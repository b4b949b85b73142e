package decompose

import "fmt"

// fallbackSteps is the fixed nine-step generic plan substituted when the
// network call itself fails (missing credential, transport error, non-2xx).
// The first step embeds the goal verbatim so the plan still names what the
// user wanted to do.
func fallbackSteps(goal string) []rawStep {
	return []rawStep{
		{
			Content:       fmt.Sprintf("明确目标：%s，想清楚完成后的样子", goal),
			Encouragement: "目标清晰，行动才有方向！",
		},
		{
			Content:       "收集完成目标所需的资料和信息",
			Encouragement: "知己知彼，百战不殆！",
		},
		{
			Content:       "把目标拆分成几个阶段，制定行动计划",
			Encouragement: "好计划是成功的一半！",
		},
		{
			Content:       "准备好需要用到的工具和资源",
			Encouragement: "工欲善其事，必先利其器！",
		},
		{
			Content:       "从最简单的部分开始动手",
			Encouragement: "万事开头难，迈出第一步最棒！",
		},
		{
			Content:       "每天固定投入一段时间推进",
			Encouragement: "坚持的力量超乎想象！",
		},
		{
			Content:       "定期回顾进度，调整计划",
			Encouragement: "及时调整，少走弯路！",
		},
		{
			Content:       "完成主要部分，攻克剩余难点",
			Encouragement: "胜利就在眼前，冲！",
		},
		{
			Content:       "总结这次的收获，庆祝你的成果",
			Encouragement: "为自己鼓掌，你太棒了！",
		},
	}
}
