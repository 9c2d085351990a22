package services

import (
	"strings"

	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
)

// Lexicon 情绪关键词词典，neutral 不需要关键词
type Lexicon map[models.Mood][]string

// DefaultLexicon 返回内置的情绪关键词词典
// 服务端词典是唯一权威来源，客户端不做本地分类
func DefaultLexicon() Lexicon {
	return Lexicon{
		models.MoodSuicidal: {
			"kill myself", "end it all", "want to die", "suicide", "no point",
			"worthless", "hopeless", "give up", "better off dead", "ending my life",
		},
		models.MoodSad: {
			"sad", "depressed", "down", "crying", "tears", "grief", "loss",
			"lonely", "empty", "disappointed", "heartbroken", "devastated",
		},
		models.MoodAnxious: {
			"anxious", "worried", "stress", "nervous", "panic", "fear", "scared",
			"overwhelmed", "restless", "tense", "uneasy", "concerned",
		},
		models.MoodHappy: {
			"happy", "joy", "excited", "great", "wonderful", "amazing", "love",
			"grateful", "blessed", "fantastic", "excellent", "thrilled", "delighted",
		},
	}
}

// MoodService 基于关键词匹配的情绪分类器
// 词典在构造时注入并转为小写，之后只读，可安全并发调用
type MoodService struct {
	lexicon Lexicon
}

func NewMoodService(lexicon Lexicon) *MoodService {
	lowered := make(Lexicon, len(lexicon))
	for mood, phrases := range lexicon {
		list := make([]string, len(phrases))
		for i, p := range phrases {
			list[i] = strings.ToLower(p)
		}
		lowered[mood] = list
	}
	return &MoodService{lexicon: lowered}
}

// scoreOrder 计分类别的固定优先级，平局时排在前面的胜出
var scoreOrder = []models.Mood{models.MoodSad, models.MoodAnxious, models.MoodHappy}

// Classify 对日记文本做情绪分类
// 匹配规则为大小写不敏感的子串包含；任何输入都能得到一个标签，不会失败
func (s *MoodService) Classify(text string) models.Mood {
	lowerText := strings.ToLower(text)

	// 自杀倾向优先级最高，命中任意一个关键词立即返回
	for _, phrase := range s.lexicon[models.MoodSuicidal] {
		if strings.Contains(lowerText, phrase) {
			return models.MoodSuicidal
		}
	}

	// 统计每个类别命中的不同关键词数量，严格最高者胜出
	best := models.MoodNeutral
	bestScore := 0
	for _, mood := range scoreOrder {
		score := 0
		for _, phrase := range s.lexicon[mood] {
			if strings.Contains(lowerText, phrase) {
				score++
			}
		}
		if score > bestScore {
			best = mood
			bestScore = score
		}
	}

	return best
}
