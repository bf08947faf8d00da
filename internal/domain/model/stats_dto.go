package model

// PeriodStats counts todos created within the trailing window.
type PeriodStats struct {
	Period     string `json:"period"`
	Days       int    `json:"days"`
	Created    int    `json:"created"`
	InProgress int    `json:"inProgress"`
	Completed  int    `json:"completed"`
}

type LongestRunningTodo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Days       int    `json:"days"`
	StatusName string `json:"statusName"`
}

type FastestCompletedTodo struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Hours float64 `json:"hours"`
}

type StatsResponse struct {
	Periods          []PeriodStats          `json:"periods"`
	LongestRunning   []LongestRunningTodo   `json:"longestRunning"`
	FastestCompleted []FastestCompletedTodo `json:"fastestCompleted"`
}
