package gateway

import (
	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/shurcooL/githubv4"
)

// languageNode is shared by primary language and language edges.
type languageNode struct {
	Name  string
	Color *string
}

// activityGraphQuery is the single composite query for one year of activity.
type activityGraphQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int
				Weeks              []struct {
					ContributionDays []struct {
						Date              string
						ContributionCount int
						Color             string
						ContributionLevel string
					}
				}
			}
			TotalCommitContributions      int
			TotalPullRequestContributions int
			TotalIssueContributions       int
			TotalRepositoryContributions  int
			RestrictedContributionsCount  int
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
		Repositories struct {
			Nodes []struct {
				Name            string
				Description     *string
				URL             string
				StargazerCount  int
				ForkCount       int
				PrimaryLanguage *languageNode
				Languages       struct {
					Edges []struct {
						Size int64
						Node languageNode
					}
				} `graphql:"languages(first: 10, orderBy: {field: SIZE, direction: DESC})"`
				DefaultBranchRef *struct {
					Target struct {
						Commit struct {
							History struct {
								TotalCount int
							} `graphql:"history(since: $since, until: $until)"`
						} `graphql:"... on Commit"`
					}
				}
			}
		} `graphql:"repositories(first: 100, orderBy: {field: PUSHED_AT, direction: DESC}, ownerAffiliations: OWNER)"`
		Followers struct {
			TotalCount int
		}
	} `graphql:"user(login: $username)"`
}

// commitHistoryQuery fetches up to 100 recent commits of the 30 most recently pushed repositories.
type commitHistoryQuery struct {
	User struct {
		Repositories struct {
			Nodes []struct {
				Name             string
				DefaultBranchRef *struct {
					Target struct {
						Commit struct {
							History struct {
								Nodes []struct {
									Message       string
									CommittedDate githubv4.DateTime
								}
							} `graphql:"history(first: 100, since: $since, until: $until)"`
						} `graphql:"... on Commit"`
					}
				}
			}
		} `graphql:"repositories(first: 30, orderBy: {field: PUSHED_AT, direction: DESC}, ownerAffiliations: OWNER)"`
	} `graphql:"user(login: $username)"`
}

func (q *activityGraphQuery) toActivityGraph() *domain.ActivityGraph {
	cc := q.User.ContributionsCollection
	graph := &domain.ActivityGraph{
		Calendar: domain.ContributionCalendar{
			TotalContributions: cc.ContributionCalendar.TotalContributions,
			Weeks:              make([]domain.ContributionWeek, 0, len(cc.ContributionCalendar.Weeks)),
		},
		Totals: domain.ContributionTotals{
			Commits:      cc.TotalCommitContributions,
			PullRequests: cc.TotalPullRequestContributions,
			Issues:       cc.TotalIssueContributions,
			Repositories: cc.TotalRepositoryContributions,
			Restricted:   cc.RestrictedContributionsCount,
		},
		Repositories:  make([]domain.RepositoryNode, 0, len(q.User.Repositories.Nodes)),
		FollowerCount: q.User.Followers.TotalCount,
	}

	for _, w := range cc.ContributionCalendar.Weeks {
		week := domain.ContributionWeek{Days: make([]domain.ContributionDay, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			week.Days = append(week.Days, domain.ContributionDay{
				Date:  d.Date,
				Count: d.ContributionCount,
				Color: d.Color,
				Level: domain.ContributionLevel(d.ContributionLevel),
			})
		}
		graph.Calendar.Weeks = append(graph.Calendar.Weeks, week)
	}

	for _, n := range q.User.Repositories.Nodes {
		repo := domain.RepositoryNode{
			Name:        n.Name,
			Description: n.Description,
			URL:         n.URL,
			StarCount:   n.StargazerCount,
			ForkCount:   n.ForkCount,
			Languages:   make([]domain.LanguageEdge, 0, len(n.Languages.Edges)),
		}
		if n.PrimaryLanguage != nil {
			repo.PrimaryLanguage = &domain.Language{Name: n.PrimaryLanguage.Name, Color: deref(n.PrimaryLanguage.Color)}
		}
		for _, e := range n.Languages.Edges {
			repo.Languages = append(repo.Languages, domain.LanguageEdge{
				Name:  e.Node.Name,
				Size:  e.Size,
				Color: deref(e.Node.Color),
			})
		}
		if n.DefaultBranchRef != nil {
			repo.DefaultBranch = &domain.BranchHistory{CommitCount: n.DefaultBranchRef.Target.Commit.History.TotalCount}
		}
		graph.Repositories = append(graph.Repositories, repo)
	}
	return graph
}

func (q *commitHistoryQuery) toCommitRecords() []domain.CommitRecord {
	records := make([]domain.CommitRecord, 0)
	for _, repo := range q.User.Repositories.Nodes {
		if repo.DefaultBranchRef == nil {
			continue // Empty repository.
		}
		for _, c := range repo.DefaultBranchRef.Target.Commit.History.Nodes {
			if c.Message == "" {
				continue
			}
			records = append(records, domain.CommitRecord{Message: c.Message, CommittedAt: c.CommittedDate.Time})
		}
	}
	return records
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
