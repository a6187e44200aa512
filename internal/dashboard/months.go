package dashboard

import "time"

const monthLayout = "2006-01"

// MonthLabels returns n calendar-month labels (YYYY-MM) ending with the month
// of now, oldest first. Labels are computed in UTC and roll over year
// boundaries (January yields the prior December as the earlier months).
func MonthLabels(now time.Time, n int) []string {
	now = now.UTC()
	labels := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		// time.Date normalizes out-of-range months into the prior year.
		t := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		labels = append(labels, t.Format(monthLayout))
	}
	return labels
}
