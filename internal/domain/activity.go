package domain

import "time"

// ActivityEntry is an audit-log record of an administrative action
type ActivityEntry struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}
