package usecase

import "github.com/naka-gawa/github-annual-review/internal/domain"

// FindMostActiveRepository returns the repository with the most default-branch
// commits in the query window. The first one wins a tie, so server order
// (most recently pushed first) breaks ties. It returns nil for an empty list.
func FindMostActiveRepository(repos []domain.RepositoryNode) *domain.Repository {
	best := -1
	bestCommits := 0
	for i, repo := range repos {
		if commits := repo.CommitsInWindow(); best < 0 || commits > bestCommits {
			best, bestCommits = i, commits
		}
	}
	if best < 0 {
		return nil
	}
	r := toRepository(repos[best])
	return &r
}

// TotalStars sums the star counts of all repositories.
func TotalStars(repos []domain.RepositoryNode) int {
	var total int
	for _, repo := range repos {
		total += repo.StarCount
	}
	return total
}

// Repositories converts graph nodes into their presentation view, keeping order.
func Repositories(repos []domain.RepositoryNode) []domain.Repository {
	out := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		out = append(out, toRepository(repo))
	}
	return out
}

func toRepository(node domain.RepositoryNode) domain.Repository {
	return domain.Repository{
		Name:        node.Name,
		FullName:    node.Name,
		Description: node.Description,
		URL:         node.URL,
		Stars:       node.StarCount,
		Forks:       node.ForkCount,
		Language:    node.PrimaryLanguageName(),
	}
}
