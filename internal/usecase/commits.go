package usecase

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-annual-review/internal/domain"
)

const (
	maxTopWords          = 30
	minWordLength        = 3
	maxLongestMessageLen = 100
	hoursPerDay          = 24

	otherCommitType  = "Other"
	otherCommitColor = "#484f58"
)

// nonWordChars matches everything that is not kept by the tokenizer.
var nonWordChars = regexp.MustCompile(`[^a-z0-9\s]`)

var stopWords = toSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "as", "is", "was", "are", "were", "been", "be", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might", "must",
	"shall", "can", "need", "dare", "ought", "used", "it", "its", "this", "that",
	"these", "those", "i", "you", "he", "she", "we", "they", "what", "which", "who",
	"when", "where", "why", "how", "all", "each", "every", "both", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "just", "into", "over", "after", "before", "between",
	"through", "during", "above", "below", "up", "down", "out", "off", "about", "if",
)

// commitTypeRule classifies a commit title. Rules are evaluated in order and
// the first match wins, so "feat: add x" is a Feature, not an Add.
type commitTypeRule struct {
	pattern *regexp.Regexp
	label   string
	color   string
}

var commitTypeRules = []commitTypeRule{
	{regexp.MustCompile(`(?i)^feat`), "Feature", "#238636"},
	{regexp.MustCompile(`(?i)^fix`), "Fix", "#f85149"},
	{regexp.MustCompile(`(?i)^docs`), "Docs", "#58a6ff"},
	{regexp.MustCompile(`(?i)^style`), "Style", "#f778ba"},
	{regexp.MustCompile(`(?i)^refactor`), "Refactor", "#8957e5"},
	{regexp.MustCompile(`(?i)^test`), "Test", "#e3b341"},
	{regexp.MustCompile(`(?i)^chore`), "Chore", "#8b949e"},
	{regexp.MustCompile(`(?i)^(add|create|implement)`), "Add", "#238636"},
	{regexp.MustCompile(`(?i)^(update|change|modify)`), "Update", "#58a6ff"},
	{regexp.MustCompile(`(?i)^(remove|delete)`), "Remove", "#f85149"},
	{regexp.MustCompile(`(?i)^(merge|pull)`), "Merge", "#8957e5"},
	{regexp.MustCompile(`(?i)^(init|initial)`), "Init", "#39d353"},
}

// AnalyzeCommitMessages computes word frequency, conventional-commit types and
// title statistics over the given commits. Only the title of each message is used.
func AnalyzeCommitMessages(records []domain.CommitRecord) *domain.CommitInsights {
	var (
		words      []domain.WordFrequency
		wordIndex  = make(map[string]int)
		totalWords int

		types     []domain.CommitType
		typeIndex = make(map[string]int)
		other     int

		lengths = make(stats.Float64Data, 0, len(records))
		longest string
		maxLen  int
	)

	for _, record := range records {
		title := record.Title()

		n := utf8.RuneCountInString(title)
		lengths = append(lengths, float64(n))
		if n > maxLen {
			longest, maxLen = title, n
		}

		for _, word := range tokenize(title) {
			totalWords++
			if i, ok := wordIndex[word]; ok {
				words[i].Count++
				continue
			}
			wordIndex[word] = len(words)
			words = append(words, domain.WordFrequency{Word: word, Count: 1})
		}

		rule, ok := classify(title)
		if !ok {
			other++
			continue
		}
		if i, ok := typeIndex[rule.label]; ok {
			types[i].Count++
			continue
		}
		typeIndex[rule.label] = len(types)
		types = append(types, domain.CommitType{Type: rule.label, Count: 1, Color: rule.color})
	}

	sort.SliceStable(words, func(i, j int) bool { return words[i].Count > words[j].Count })
	if len(words) > maxTopWords {
		words = words[:maxTopWords]
	}
	for i := range words {
		if totalWords > 0 {
			words[i].Percentage = float64(words[i].Count) / float64(totalWords) * 100
		}
	}

	if other > 0 {
		types = append(types, domain.CommitType{Type: otherCommitType, Count: other, Color: otherCommitColor})
	}
	sort.SliceStable(types, func(i, j int) bool { return types[i].Count > types[j].Count })

	if words == nil {
		words = []domain.WordFrequency{}
	}
	if types == nil {
		types = []domain.CommitType{}
	}

	return &domain.CommitInsights{
		TotalCommitMessages:  len(records),
		WordFrequency:        words,
		CommitTypes:          types,
		AverageMessageLength: averageLength(lengths),
		LongestMessage:       truncateRunes(longest, maxLongestMessageLen),
		MostActiveHour:       0,
		CommitsByHour:        make([]int, hoursPerDay),
	}
}

// tokenize lowercases a title and returns the words that count towards frequency.
func tokenize(title string) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(title), " ")
	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) < minWordLength || stopWords[word] {
			continue
		}
		out = append(out, word)
	}
	return out
}

func classify(title string) (commitTypeRule, bool) {
	for _, rule := range commitTypeRules {
		if rule.pattern.MatchString(title) {
			return rule, true
		}
	}
	return commitTypeRule{}, false
}

// averageLength returns the mean title length rounded to the nearest integer, or 0.
func averageLength(lengths stats.Float64Data) int {
	mean, err := stats.Mean(lengths)
	if err != nil {
		return 0
	}
	rounded, err := stats.Round(mean, 0)
	if err != nil {
		return 0
	}
	return int(rounded)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

func toSet(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
