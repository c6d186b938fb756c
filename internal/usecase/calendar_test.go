package usecase

import (
	"testing"

	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(days ...domain.ContributionDay) domain.ContributionWeek {
	return domain.ContributionWeek{Days: days}
}

func day(date string, count int) domain.ContributionDay {
	return domain.ContributionDay{Date: date, Count: count}
}

func TestFindBusiestDay(t *testing.T) {
	testCases := []struct {
		name     string
		calendar domain.ContributionCalendar
		expected *domain.DayPoint
	}{
		{
			name:     "empty case - no weeks",
			calendar: domain.ContributionCalendar{},
			expected: nil,
		},
		{
			name:     "empty case - weeks without days",
			calendar: domain.ContributionCalendar{Weeks: []domain.ContributionWeek{week(), week()}},
			expected: nil,
		},
		{
			name: "happy path - maximum across weeks",
			calendar: domain.ContributionCalendar{Weeks: []domain.ContributionWeek{
				week(day("2024-01-01", 2), day("2024-01-02", 5)),
				week(day("2024-01-08", 9), day("2024-01-09", 1)),
			}},
			expected: &domain.DayPoint{Date: "2024-01-08", Contributions: 9},
		},
		{
			name: "tie - first occurrence wins",
			calendar: domain.ContributionCalendar{Weeks: []domain.ContributionWeek{
				week(day("2024-02-01", 4)),
				week(day("2024-02-08", 4)),
			}},
			expected: &domain.DayPoint{Date: "2024-02-01", Contributions: 4},
		},
		{
			name: "all zero - first day is returned",
			calendar: domain.ContributionCalendar{Weeks: []domain.ContributionWeek{
				week(day("2024-03-01", 0), day("2024-03-02", 0)),
			}},
			expected: &domain.DayPoint{Date: "2024-03-01", Contributions: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FindBusiestDay(tc.calendar))
		})
	}
}

func TestMonthlyContributions(t *testing.T) {
	calendar := domain.ContributionCalendar{
		TotalContributions: 21,
		Weeks: []domain.ContributionWeek{
			week(day("2024-01-30", 1), day("2024-01-31", 2), day("2024-02-01", 3)),
			week(day("2024-06-15", 5)),
			week(day("2024-12-31", 10)),
		},
	}

	months := MonthlyContributions(calendar)

	require.Len(t, months, 12)
	labels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	var total int
	for i, m := range months {
		assert.Equal(t, labels[i], m.Month)
		assert.Zero(t, m.PRs)
		assert.Zero(t, m.Issues)
		total += m.Commits
	}
	assert.Equal(t, 3, months[0].Commits)
	assert.Equal(t, 3, months[1].Commits)
	assert.Equal(t, 5, months[5].Commits)
	assert.Equal(t, 10, months[11].Commits)
	assert.Equal(t, calendar.TotalContributions, total)
}

func TestMonthlyContributions_EmptyAndMalformed(t *testing.T) {
	months := MonthlyContributions(domain.ContributionCalendar{})
	require.Len(t, months, 12)
	for _, m := range months {
		assert.Zero(t, m.Commits)
	}

	months = MonthlyContributions(domain.ContributionCalendar{Weeks: []domain.ContributionWeek{
		week(day("not-a-date", 7), day("2024-04-04", 1)),
	}})
	assert.Equal(t, 1, months[3].Commits)
}
