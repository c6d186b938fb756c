package domain

// LanguageStat is a language's share of the bytes across all repositories.
type LanguageStat struct {
	Name       string  `json:"name"`
	Size       int64   `json:"size"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

// DayPoint is a calendar date with its contribution count.
type DayPoint struct {
	Date          string `json:"date"`
	Contributions int    `json:"contributions"`
}

// MonthlyContribution holds the contributions of one calendar month.
// PRs and Issues are part of the output shape but are never populated:
// the calendar only carries a combined daily count.
type MonthlyContribution struct {
	Month   string `json:"month"`
	Commits int    `json:"commits"`
	PRs     int    `json:"prs"`
	Issues  int    `json:"issues"`
}

// Repository is the presentation view of an owned repository.
type Repository struct {
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	URL         string  `json:"html_url"`
	Stars       int     `json:"stargazers_count"`
	Forks       int     `json:"forks_count"`
	Language    *string `json:"language"`
}

// WordFrequency is how often a word appears across commit titles.
type WordFrequency struct {
	Word       string  `json:"word"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CommitType is a conventional-commit category and its occurrence count.
type CommitType struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// CommitInsights summarizes the commit titles of a year.
type CommitInsights struct {
	TotalCommitMessages  int             `json:"totalCommitMessages"`
	WordFrequency        []WordFrequency `json:"wordFrequency"`
	CommitTypes          []CommitType    `json:"commitTypes"`
	AverageMessageLength int             `json:"averageMessageLength"`
	LongestMessage       string          `json:"longestMessage"`
	// MostActiveHour and CommitsByHour are fixed placeholders; no hour-level data is fetched.
	MostActiveHour int   `json:"mostActiveHour"`
	CommitsByHour  []int `json:"commitsByHour"`
}

// AnnualReview is the summary of one user's year on GitHub.
// It is created once per assembly and never mutated afterwards.
type AnnualReview struct {
	Year                 int                   `json:"year"`
	User                 UserProfile           `json:"user"`
	TotalCommits         int                   `json:"totalCommits"`
	TotalPRs             int                   `json:"totalPRs"`
	TotalIssues          int                   `json:"totalIssues"`
	TotalStars           int                   `json:"totalStars"`
	NewFollowers         int                   `json:"newFollowers"`
	MostActiveRepo       *Repository           `json:"mostActiveRepo"`
	TopLanguages         []LanguageStat        `json:"topLanguages"`
	BusiestDay           *DayPoint             `json:"busiestDay"`
	ContributionCalendar *ContributionCalendar `json:"contributionCalendar"`
	Repositories         []Repository          `json:"repositories"`
	MonthlyContributions []MonthlyContribution `json:"monthlyContributions"`
	CommitInsights       *CommitInsights       `json:"commitInsights"`
}
