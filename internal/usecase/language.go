package usecase

import (
	"sort"

	"github.com/naka-gawa/github-annual-review/internal/domain"
)

const (
	maxTopLanguages = 10
	// fallbackLanguageColor is used when linguist has no color for a language.
	fallbackLanguageColor = "#8b949e"
)

// AggregateLanguages merges the language edges of all repositories and returns
// the top languages by byte size, largest first.
func AggregateLanguages(repos []domain.RepositoryNode) []domain.LanguageStat {
	// Insertion order is kept so that equal sizes rank by first appearance.
	var langs []domain.LanguageStat
	index := make(map[string]int)
	var total int64

	for _, repo := range repos {
		for _, edge := range repo.Languages {
			total += edge.Size
			if i, ok := index[edge.Name]; ok {
				langs[i].Size += edge.Size
				continue
			}
			color := edge.Color
			if color == "" {
				color = fallbackLanguageColor
			}
			index[edge.Name] = len(langs)
			langs = append(langs, domain.LanguageStat{Name: edge.Name, Size: edge.Size, Color: color})
		}
	}

	for i := range langs {
		if total > 0 {
			langs[i].Percentage = float64(langs[i].Size) / float64(total) * 100
		}
	}

	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Size > langs[j].Size
	})
	if len(langs) > maxTopLanguages {
		langs = langs[:maxTopLanguages]
	}
	if langs == nil {
		return []domain.LanguageStat{}
	}
	return langs
}
