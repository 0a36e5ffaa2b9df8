package models

import "strings"

// EmotionCategory 情绪类别，Plutchik情绪轮8类加中性
type EmotionCategory string

const (
	EmotionJoy          EmotionCategory = "joy"
	EmotionTrust        EmotionCategory = "trust"
	EmotionFear         EmotionCategory = "fear"
	EmotionSurprise     EmotionCategory = "surprise"
	EmotionSadness      EmotionCategory = "sadness"
	EmotionDisgust      EmotionCategory = "disgust"
	EmotionAnger        EmotionCategory = "anger"
	EmotionAnticipation EmotionCategory = "anticipation"
	EmotionNeutral      EmotionCategory = "neutral"
)

// DefaultIntensity 九类之外的情绪标签统一取量表中值，
// 图表和聚合中对未知标签只有这一种回退
const DefaultIntensity = 5

// emotionIntensity 固定的情绪强度映射，仅用于图表数值计算
var emotionIntensity = map[EmotionCategory]int{
	EmotionJoy:          10,
	EmotionTrust:        9,
	EmotionAnticipation: 7,
	EmotionSurprise:     6,
	EmotionFear:         4,
	EmotionSadness:      3,
	EmotionAnger:        2,
	EmotionDisgust:      1,
	EmotionNeutral:      0,
}

// AllEmotions 返回固定的九类情绪
func AllEmotions() []EmotionCategory {
	return []EmotionCategory{
		EmotionJoy, EmotionTrust, EmotionFear, EmotionSurprise, EmotionSadness,
		EmotionDisgust, EmotionAnger, EmotionAnticipation, EmotionNeutral,
	}
}

// ParseEmotion 将标签归一化为情绪类别，未知标签返回归一化后的值和false
func ParseEmotion(label string) (EmotionCategory, bool) {
	e := EmotionCategory(strings.ToLower(strings.TrimSpace(label)))
	_, ok := emotionIntensity[e]
	return e, ok
}

// Intensity 返回情绪强度分值，未知类别返回 DefaultIntensity
func (e EmotionCategory) Intensity() int {
	if v, ok := emotionIntensity[e]; ok {
		return v
	}
	return DefaultIntensity
}
