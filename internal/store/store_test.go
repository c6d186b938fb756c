package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "reviews.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	s.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func review(login string, year, commits int) *domain.AnnualReview {
	return &domain.AnnualReview{
		Year:                 year,
		User:                 domain.UserProfile{Login: login},
		TotalCommits:         commits,
		TotalStars:           commits * 2,
		TopLanguages:         []domain.LanguageStat{{Name: "Go", Size: 10, Color: "#00ADD8", Percentage: 100}},
		MonthlyContributions: make([]domain.MonthlyContribution, 12),
		BusiestDay:           &domain.DayPoint{Date: "2024-05-05", Contributions: 3},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	saved := review("octocat", 2024, 10)
	require.NoError(t, s.Save(ctx, saved))

	loaded, err := s.Load(ctx, "octocat", 2024)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, review("octocat", 2024, 10)))
	require.NoError(t, s.Save(ctx, review("octocat", 2024, 25)))

	loaded, err := s.Load(ctx, "octocat", 2024)
	require.NoError(t, err)
	assert.Equal(t, 25, loaded.TotalCommits)

	entries, err := s.List(ctx, "octocat")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_LoadNotFound(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.Load(context.Background(), "ghost", 2024)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, loaded)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, review("octocat", 2022, 1)))
	require.NoError(t, s.Save(ctx, review("octocat", 2024, 3)))
	require.NoError(t, s.Save(ctx, review("hubot", 2023, 2)))

	entries, err := s.List(ctx, "octocat")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{
		Login:        "octocat",
		Year:         2024,
		GeneratedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		TotalCommits: 3,
		TotalStars:   6,
	}, entries[0])
	assert.Equal(t, 2022, entries[1].Year)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{2024, 2023, 2022}, []int{all[0].Year, all[1].Year, all[2].Year})

	none, err := s.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_LoginIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, review("octocat", 2024, 3)))

	loaded, err := s.Load(ctx, "Octocat", 2024)
	require.NoError(t, err)
	assert.Equal(t, "octocat", loaded.User.Login)

	entries, err := s.List(ctx, "OCTOCAT")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Save(ctx, review("OctoCat", 2024, 5)))
	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].TotalCommits)
}
