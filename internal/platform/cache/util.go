package cache

import (
	"time"
)

// TimeUntilNextDisclosureRefresh returns the duration until the next 08:00
// KST, shortly before the Korean market opens. Dividend disclosures for past
// business years only change when a company refiles, so once a day is
// enough.
func TimeUntilNextDisclosureRefresh() time.Duration {
	loc, _ := time.LoadLocation("Asia/Seoul")
	now := time.Now().In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, loc)
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
