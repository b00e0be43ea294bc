package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the store section of the health endpoint payload: a
// liveness verdict plus a snapshot of the connection pool.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the store and samples the pool. On a failed ping the
// partial status is returned together with the error, so callers can
// still surface the measured response time.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	status := &HealthStatus{Status: "healthy"}

	if err := db.PingContext(ctx); err != nil {
		status.Status = "unhealthy"
		status.ResponseTime = time.Since(start).Milliseconds()
		return status, err
	}
	status.ResponseTime = time.Since(start).Milliseconds()

	pool := db.Stats()
	status.OpenConnections = pool.OpenConnections
	status.InUse = pool.InUse
	status.Idle = pool.Idle
	status.WaitCount = pool.WaitCount
	status.WaitDuration = pool.WaitDuration.Milliseconds()
	status.MaxOpenConns = pool.MaxOpenConnections

	return status, nil
}
