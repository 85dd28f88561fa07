package repository

import "time"

// Visit is one navigation recorded by the shell.
type Visit struct {
	ID        string
	SessionID string
	Route     string
	Source    string
	VisitedAt time.Time
}

// RouteCount is the number of visits to one route.
type RouteCount struct {
	Route string
	Count int
}
