// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// FetchProfile fetches the profile of login, or of the authenticated user when login is empty.
	FetchProfile(ctx context.Context, login string) (*domain.UserProfile, error)
	FetchActivityGraph(ctx context.Context, login string, from, to time.Time) (*domain.ActivityGraph, error)
	FetchCommitMessages(ctx context.Context, login string, from, to time.Time) ([]domain.CommitRecord, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	httpClient, err := newHTTPClient(token)
	if err != nil {
		return nil, err
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// NewEnterpriseGateway creates a gateway for a GitHub Enterprise Server
// instance rooted at baseURL, e.g. https://github.example.com.
func NewEnterpriseGateway(baseURL, token string, logger *log.Logger) (Fetcher, error) {
	httpClient, err := newHTTPClient(token)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid enterprise URL %q: %w", baseURL, err)
	}
	restURL := base.JoinPath("api", "v3").String() + "/"
	restClient, err := github.NewClient(httpClient).WithEnterpriseURLs(restURL, restURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure enterprise REST client: %w", err)
	}
	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: githubv4.NewEnterpriseClient(base.JoinPath("api", "graphql").String(), httpClient),
		logger:        logger,
	}, nil
}

func newHTTPClient(token string) (*http.Client, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}, nil
}

func (g *GitHubGateway) FetchProfile(ctx context.Context, login string) (*domain.UserProfile, error) {
	g.logger.Println("[1/3] Fetching user profile using REST API...")
	// An empty login makes go-github request the authenticated user.
	user, _, err := g.restClient.Users.Get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile with REST API: %w", classifyRESTError(err))
	}
	if user.GetLogin() == "" {
		return nil, fmt.Errorf("failed to get user profile with REST API: %w: missing login", domain.ErrDataShape)
	}
	g.logger.Printf("Completed fetching profile of %s.", user.GetLogin())
	return toUserProfile(user), nil
}

func (g *GitHubGateway) FetchActivityGraph(ctx context.Context, login string, from, to time.Time) (*domain.ActivityGraph, error) {
	g.logger.Println("[2/3] Fetching activity graph using GraphQL API...")
	variables := map[string]interface{}{
		"username": githubv4.String(login),
		"from":     githubv4.DateTime{Time: from},
		"to":       githubv4.DateTime{Time: to},
		"since":    githubv4.GitTimestamp{Time: from},
		"until":    githubv4.GitTimestamp{Time: to},
	}
	var q activityGraphQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for activity graph: %w", classifyGraphQLError(err))
	}
	graph := q.toActivityGraph()
	g.logger.Printf("Completed fetching activity graph: %d repositories, %d contributions.",
		len(graph.Repositories), graph.Calendar.TotalContributions)
	return graph, nil
}

func (g *GitHubGateway) FetchCommitMessages(ctx context.Context, login string, from, to time.Time) ([]domain.CommitRecord, error) {
	g.logger.Println("[3/3] Fetching commit messages using GraphQL API...")
	variables := map[string]interface{}{
		"username": githubv4.String(login),
		"since":    githubv4.GitTimestamp{Time: from},
		"until":    githubv4.GitTimestamp{Time: to},
	}
	var q commitHistoryQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for commit messages: %w", classifyGraphQLError(err))
	}
	records := q.toCommitRecords()
	g.logger.Printf("Completed fetching %d commit messages.", len(records))
	return records, nil
}

func toUserProfile(u *github.User) *domain.UserProfile {
	profile := &domain.UserProfile{
		Login:       u.GetLogin(),
		ID:          u.GetID(),
		AvatarURL:   u.GetAvatarURL(),
		Name:        u.Name,
		Bio:         u.Bio,
		Company:     u.Company,
		Location:    u.Location,
		Email:       u.Email,
		Blog:        u.Blog,
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
	}
	if u.CreatedAt != nil {
		profile.CreatedAt = u.CreatedAt.Time
	}
	return profile
}
