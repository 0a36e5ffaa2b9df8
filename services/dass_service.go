package services

import "MindHavenGo/models"

// DassScores DASS-21 三个分量表得分与总分
type DassScores struct {
	Depression int `json:"depression"`
	Anxiety    int `json:"anxiety"`
	Stress     int `json:"stress"`
	Total      int `json:"total"`
}

// 分级标签，取自DASS-21公开常模
const (
	BandNormal          = "Normal"
	BandMild            = "Mild"
	BandModerate        = "Moderate"
	BandSevere          = "Severe"
	BandExtremelySevere = "Extremely Severe"
)

// dassBand 单调递增的分级阈值
type dassBand struct {
	upper int
	label string
}

// 各分量表的分级阈值（<=upper 落入该级，超出最后一档为 Extremely Severe）
var dassBands = map[string][]dassBand{
	models.DassDepression: {{4, BandNormal}, {6, BandMild}, {10, BandModerate}, {13, BandSevere}},
	models.DassAnxiety:    {{3, BandNormal}, {5, BandMild}, {7, BandModerate}, {9, BandSevere}},
	models.DassStress:     {{7, BandNormal}, {9, BandMild}, {12, BandModerate}, {16, BandSevere}},
}

// ScoreAnswers 按固定的题目分类表累加得分。
// 接受部分作答，越界的下标或取值直接跳过，永远返回确定结果。
func ScoreAnswers(answers map[int]int) DassScores {
	var scores DassScores
	for idx, value := range answers {
		if value < 0 || value > 3 {
			continue
		}
		question, ok := models.DassQuestionByIndex(idx)
		if !ok {
			continue
		}
		switch question.Category {
		case models.DassDepression:
			scores.Depression += value
		case models.DassAnxiety:
			scores.Anxiety += value
		case models.DassStress:
			scores.Stress += value
		}
	}
	scores.Total = scores.Depression + scores.Anxiety + scores.Stress
	return scores
}

// ClassifyScore 返回某分量表得分的分级标签
func ClassifyScore(category string, score int) string {
	for _, band := range dassBands[category] {
		if score <= band.upper {
			return band.label
		}
	}
	return BandExtremelySevere
}
