// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/naka-gawa/github-annual-review/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Aggregator is the use case for building an annual review.
// It orchestrates the fetching of activity data and its reduction.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Assemble builds the annual review of login for the given year. An empty
// login reviews the authenticated user.
//
// Failing to fetch the profile or the activity graph aborts the review.
// Failing to fetch commit messages only drops the commit insights.
func (a *Aggregator) Assemble(ctx context.Context, login string, year int) (*domain.AnnualReview, error) {
	a.logger.Printf("Usecase: Starting annual review for year %d...", year)

	user, err := a.fetcher.FetchProfile(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w: no profile returned", domain.ErrDataShape)
	}
	from, to := domain.YearWindow(year)

	var graph *domain.ActivityGraph
	var messages []domain.CommitRecord

	// The activity graph and commit history are independent queries.
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		graph, err = a.fetcher.FetchActivityGraph(egCtx, user.Login, from, to)
		if err != nil {
			return fmt.Errorf("failed to fetch activity graph: %w", err)
		}
		if graph == nil {
			return fmt.Errorf("failed to fetch activity graph: %w: no graph returned", domain.ErrDataShape)
		}
		return nil
	})

	eg.Go(func() error {
		msgs, err := a.fetcher.FetchCommitMessages(egCtx, user.Login, from, to)
		if err != nil {
			a.logger.Printf("Usecase: Warning: failed to get commit insights: %v", err)
			return nil
		}
		if msgs == nil {
			msgs = []domain.CommitRecord{}
		}
		messages = msgs
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// A cancelled caller must not get a review degraded by the cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("annual review interrupted: %w", err)
	}
	a.logger.Println("Usecase: All data fetched successfully.")

	review := ComputeAnnualReview(ReviewInput{
		Year:     year,
		User:     *user,
		Graph:    *graph,
		Messages: messages,
	})

	a.logger.Println("Usecase: Aggregation complete.")
	return review, nil
}
