package domain

import "time"

// Board is one fetched-and-normalized snapshot of everything the site
// displays: combined events from all sources plus sermon recordings.
type Board struct {
	FetchedAt  time.Time   `json:"fetchedAt"`
	Events     []Event     `json:"events"`
	Services   []Service   `json:"services"`
	Recordings []Recording `json:"recordings"`
}
