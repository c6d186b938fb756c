package usecase

import (
	"time"

	"github.com/naka-gawa/github-annual-review/internal/domain"
)

const calendarDateLayout = "2006-01-02"

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FindBusiestDay returns the day with the highest contribution count.
// The earliest day wins a tie. It returns nil when the calendar has no days.
func FindBusiestDay(cal domain.ContributionCalendar) *domain.DayPoint {
	var busiest *domain.DayPoint
	for _, week := range cal.Weeks {
		for _, day := range week.Days {
			if busiest == nil || day.Count > busiest.Contributions {
				busiest = &domain.DayPoint{Date: day.Date, Contributions: day.Count}
			}
		}
	}
	return busiest
}

// MonthlyContributions buckets the daily counts of the calendar into twelve
// months, Jan through Dec. Only Commits is filled in.
func MonthlyContributions(cal domain.ContributionCalendar) []domain.MonthlyContribution {
	months := make([]domain.MonthlyContribution, len(monthLabels))
	for i, label := range monthLabels {
		months[i].Month = label
	}

	for _, week := range cal.Weeks {
		for _, day := range week.Days {
			date, err := time.Parse(calendarDateLayout, day.Date)
			if err != nil {
				continue
			}
			months[date.Month()-1].Commits += day.Count
		}
	}
	return months
}
