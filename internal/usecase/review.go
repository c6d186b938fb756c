package usecase

import "github.com/naka-gawa/github-annual-review/internal/domain"

// ReviewInput is everything ComputeAnnualReview needs, already fetched.
type ReviewInput struct {
	Year  int
	User  domain.UserProfile
	Graph domain.ActivityGraph
	// Messages is nil when the commit history could not be retrieved; the
	// review then carries no commit insights. An empty, non-nil slice means
	// the user made no commits.
	Messages []domain.CommitRecord
}

// ComputeAnnualReview reduces the fetched activity into a yearly summary.
// It is pure: the same input always yields the same review.
func ComputeAnnualReview(in ReviewInput) *domain.AnnualReview {
	graph := in.Graph
	calendar := graph.Calendar

	review := &domain.AnnualReview{
		Year:                 in.Year,
		User:                 in.User,
		TotalCommits:         graph.Totals.Commits,
		TotalPRs:             graph.Totals.PullRequests,
		TotalIssues:          graph.Totals.Issues,
		TotalStars:           TotalStars(graph.Repositories),
		NewFollowers:         graph.FollowerCount,
		MostActiveRepo:       FindMostActiveRepository(graph.Repositories),
		TopLanguages:         AggregateLanguages(graph.Repositories),
		BusiestDay:           FindBusiestDay(calendar),
		ContributionCalendar: &calendar,
		Repositories:         Repositories(graph.Repositories),
		MonthlyContributions: MonthlyContributions(calendar),
	}
	if in.Messages != nil {
		review.CommitInsights = AnalyzeCommitMessages(in.Messages)
	}
	return review
}
