package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"MindHavenGo/models"
)

// MoodBucket 一个日历分组的聚合结果
type MoodBucket struct {
	Key              string  `json:"bucket_key"`
	AverageIntensity float64 `json:"average_intensity"`
	SampleCount      int     `json:"sample_count"`
}

// EmotionCount 情绪分布计数（环形图用）
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// AggregateMoods 将情绪记录按日历粒度分组并计算平均强度。
// 时间范围为闭区间，输入顺序不做假设，输出按时间升序，
// 折线图依赖这个顺序。空结果返回空切片。
func AggregateMoods(moods []models.Mood, bucket string, start, end time.Time) []MoodBucket {
	type accumulator struct {
		total    int
		count    int
		earliest time.Time
	}
	groups := make(map[string]*accumulator)

	for _, mood := range moods {
		if !inRange(mood.CreatedAt, start, end) {
			continue
		}
		key := bucketKey(mood.CreatedAt, bucket)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{earliest: mood.CreatedAt}
			groups[key] = acc
		}
		acc.total += models.EmotionCategory(mood.SelectedEmotion).Intensity()
		acc.count++
		if mood.CreatedAt.Before(acc.earliest) {
			acc.earliest = mood.CreatedAt
		}
	}

	buckets := make([]MoodBucket, 0, len(groups))
	order := make(map[string]time.Time, len(groups))
	for key, acc := range groups {
		mean := float64(acc.total) / float64(acc.count)
		buckets = append(buckets, MoodBucket{
			Key:              key,
			AverageIntensity: math.Round(mean*10) / 10,
			SampleCount:      acc.count,
		})
		order[key] = acc.earliest
	}
	sort.Slice(buckets, func(i, j int) bool {
		return order[buckets[i].Key].Before(order[buckets[j].Key])
	})
	return buckets
}

// CountEmotions 统计范围内各情绪的原始出现次数，不做平均。
// 与聚合只共享过滤一步。次数相同按名称排序，结果稳定。
func CountEmotions(moods []models.Mood, start, end time.Time) []EmotionCount {
	counts := make(map[string]int)
	for _, mood := range moods {
		if !inRange(mood.CreatedAt, start, end) {
			continue
		}
		counts[mood.SelectedEmotion]++
	}

	result := make([]EmotionCount, 0, len(counts))
	for emotion, count := range counts {
		result = append(result, EmotionCount{Emotion: emotion, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Emotion < result[j].Emotion
	})
	return result
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// bucketKey 按日历粒度截断时间生成分组键（UTC）
func bucketKey(t time.Time, bucket string) string {
	t = t.UTC()
	switch bucket {
	case "week":
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case "month":
		return t.Format("2006-01")
	case "year":
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}
