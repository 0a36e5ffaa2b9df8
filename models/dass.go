package models

// DASS-21 量表的三个分量表
const (
	DassDepression = "depression"
	DassAnxiety    = "anxiety"
	DassStress     = "stress"
)

// DassQuestion DASS-21 题目
type DassQuestion struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// DassQuestions DASS-21 的21道固定题目，每个分量表7题
var DassQuestions = []DassQuestion{
	{ID: 1, Text: "I found it hard to wind down", Category: DassStress},
	{ID: 2, Text: "I was aware of dryness of my mouth", Category: DassAnxiety},
	{ID: 3, Text: "I couldn't seem to experience any positive feeling at all", Category: DassDepression},
	{ID: 4, Text: "I experienced breathing difficulty", Category: DassAnxiety},
	{ID: 5, Text: "I found it difficult to work up the initiative to do things", Category: DassDepression},
	{ID: 6, Text: "I tended to over-react to situations", Category: DassStress},
	{ID: 7, Text: "I experienced trembling (e.g., in the hands)", Category: DassAnxiety},
	{ID: 8, Text: "I felt that I was using a lot of nervous energy", Category: DassStress},
	{ID: 9, Text: "I was worried about situations in which I might panic and make a fool of myself", Category: DassAnxiety},
	{ID: 10, Text: "I felt that I had nothing to look forward to", Category: DassDepression},
	{ID: 11, Text: "I found myself getting agitated", Category: DassStress},
	{ID: 12, Text: "I found it difficult to relax", Category: DassStress},
	{ID: 13, Text: "I felt down-hearted and blue", Category: DassDepression},
	{ID: 14, Text: "I was intolerant of anything that kept me from getting on with what I was doing", Category: DassStress},
	{ID: 15, Text: "I felt I was close to panic", Category: DassAnxiety},
	{ID: 16, Text: "I was unable to become enthusiastic about anything", Category: DassDepression},
	{ID: 17, Text: "I felt I wasn't worth much as a person", Category: DassDepression},
	{ID: 18, Text: "I felt that I was rather touchy", Category: DassStress},
	{ID: 19, Text: "I was aware of the action of my heart in the absence of physical exertion", Category: DassAnxiety},
	{ID: 20, Text: "I felt scared without any good reason", Category: DassAnxiety},
	{ID: 21, Text: "I felt that life was meaningless", Category: DassDepression},
}

// DassQuestionByIndex 按答题下标（0-20）取题目
func DassQuestionByIndex(index int) (DassQuestion, bool) {
	if index < 0 || index >= len(DassQuestions) {
		return DassQuestion{}, false
	}
	return DassQuestions[index], true
}
