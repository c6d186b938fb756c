// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"strings"
	"time"
)

// ContributionLevel is the intensity bucket GitHub assigns to a calendar day.
type ContributionLevel string

const (
	LevelNone           ContributionLevel = "NONE"
	LevelFirstQuartile  ContributionLevel = "FIRST_QUARTILE"
	LevelSecondQuartile ContributionLevel = "SECOND_QUARTILE"
	LevelThirdQuartile  ContributionLevel = "THIRD_QUARTILE"
	LevelFourthQuartile ContributionLevel = "FOURTH_QUARTILE"
)

// ContributionDay is a single day of the contribution calendar.
type ContributionDay struct {
	Date  string            `json:"date"` // YYYY-MM-DD
	Count int               `json:"contributionCount"`
	Color string            `json:"color"`
	Level ContributionLevel `json:"contributionLevel"`
}

// ContributionWeek holds up to seven days, Sunday first.
type ContributionWeek struct {
	Days []ContributionDay `json:"contributionDays"`
}

// ContributionCalendar is the ordered sequence of weeks spanning the queried year.
type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// ContributionTotals are the scalar counters of a contributions collection.
type ContributionTotals struct {
	Commits      int `json:"totalCommitContributions"`
	PullRequests int `json:"totalPullRequestContributions"`
	Issues       int `json:"totalIssueContributions"`
	Repositories int `json:"totalRepositoryContributions"`
	Restricted   int `json:"restrictedContributionsCount"`
}

// Language is a programming language as reported by GitHub linguist.
type Language struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LanguageEdge is the number of bytes a repository holds in one language.
type LanguageEdge struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Color string `json:"color"` // empty when GitHub has no color for the language
}

// BranchHistory is the commit history of a default branch within the query window.
type BranchHistory struct {
	CommitCount int `json:"totalCount"`
}

// RepositoryNode is one owned repository as returned by the activity graph query.
type RepositoryNode struct {
	Name            string         `json:"name"`
	Description     *string        `json:"description"`
	URL             string         `json:"url"`
	StarCount       int            `json:"stargazerCount"`
	ForkCount       int            `json:"forkCount"`
	PrimaryLanguage *Language      `json:"primaryLanguage"`
	Languages       []LanguageEdge `json:"languages"`
	// DefaultBranch is nil for empty repositories or when the branch target is not a commit.
	DefaultBranch *BranchHistory `json:"defaultBranchRef"`
}

// CommitsInWindow returns the default-branch commit count, or 0 when there is no default branch.
func (r RepositoryNode) CommitsInWindow() int {
	if r.DefaultBranch == nil {
		return 0
	}
	return r.DefaultBranch.CommitCount
}

// PrimaryLanguageName returns the name of the primary language, or nil when unknown.
func (r RepositoryNode) PrimaryLanguageName() *string {
	if r.PrimaryLanguage == nil || r.PrimaryLanguage.Name == "" {
		return nil
	}
	name := r.PrimaryLanguage.Name
	return &name
}

// ActivityGraph is a year-scoped snapshot of a user's activity.
// It is treated as immutable once fetched.
type ActivityGraph struct {
	Calendar      ContributionCalendar `json:"contributionCalendar"`
	Totals        ContributionTotals   `json:"totals"`
	Repositories  []RepositoryNode     `json:"repositories"`
	FollowerCount int                  `json:"followerCount"`
}

// CommitRecord is one commit message retrieved from a default branch.
type CommitRecord struct {
	Message     string    `json:"message"`
	CommittedAt time.Time `json:"committedDate"`
}

// Title returns the first line of the commit message.
func (c CommitRecord) Title() string {
	title, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSuffix(title, "\r")
}

// UserProfile is the public profile of a GitHub user.
type UserProfile struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	AvatarURL   string    `json:"avatar_url"`
	Name        *string   `json:"name"`
	Bio         *string   `json:"bio"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Email       *string   `json:"email"`
	Blog        *string   `json:"blog"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// YearWindow returns the inclusive UTC bounds used to query a calendar year.
func YearWindow(year int) (from, to time.Time) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}
