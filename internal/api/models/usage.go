package models

import (
	"fmt"
	"net/url"
	"time"
)

const dateLayout = "2006-01-02"

// UsagePeriod bounds a usage query. Empty dates are left out.
type UsagePeriod struct {
	StartDate string
	EndDate   string
}

// Validate checks both dates are YYYY-MM-DD and ordered.
func (p UsagePeriod) Validate() error {
	var start, end time.Time
	var err error
	if p.StartDate != "" {
		if start, err = time.Parse(dateLayout, p.StartDate); err != nil {
			return fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", p.StartDate)
		}
	}
	if p.EndDate != "" {
		if end, err = time.Parse(dateLayout, p.EndDate); err != nil {
			return fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", p.EndDate)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", p.EndDate, p.StartDate)
	}
	return nil
}

func (p UsagePeriod) Query() url.Values {
	q := url.Values{}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	return q
}
