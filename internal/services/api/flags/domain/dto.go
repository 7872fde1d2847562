// Package domain holds DTOs for flags http and service contracts
package domain

// CategoryCount is one flag type with its tally
type CategoryCount struct {
	FlagType string `json:"flag_type" example:"red"`
	Count    int    `json:"count" example:"12"`
}

// MonthBucket is one calendar month of counts with a display name
type MonthBucket struct {
	Name string          `json:"name" example:"June 2026"`
	Data []CategoryCount `json:"data"`
}

// MonthDistribution maps month1..monthN (most recent first) to buckets
type MonthDistribution map[string]MonthBucket

// DayEntry is one report rendered for a single-day listing
// Times are wall clock in the deployment timezone
type DayEntry struct {
	Time     string  `json:"time" example:"14:05"`
	FlagType *string `json:"flag_type" example:"double red"`
	DateTime string  `json:"date_time" example:"2026-06-03T14:05:00-05:00"`
}

// LatestRow is one recent report, newest first
type LatestRow struct {
	ID        string `json:"id" example:"0d9af8a2-1f6c-4b44-9df1-2f0e5a3c7b1e"`
	FlagDate  string `json:"flag_date" example:"2026-06-03"`
	FlagTime  string `json:"flag_time,omitempty" example:"14:05"`
	FlagType  string `json:"flag_type" example:"yellow"`
	CreatedAt string `json:"created_at" example:"2026-06-03T19:05:00Z"`
}
