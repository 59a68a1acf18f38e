package services

import (
	"context"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// HealthService reports whether the database behind the API answers
type HealthService struct {
	ping    func(ctx context.Context) error
	started time.Time
	now     func() time.Time
}

func NewHealthService(ping func(ctx context.Context) error) *HealthService {
	return &HealthService{ping: ping, started: time.Now(), now: time.Now}
}

// Check pings the database within timeout. ok is false when it did not answer.
func (s *HealthService) Check(ctx context.Context, timeout time.Duration) (status HealthStatus, ok bool) {
	status = HealthStatus{
		Status:   "ok",
		Service:  "scolarite-api",
		Version:  Version,
		Database: "ok",
		Uptime:   s.now().Sub(s.started).Truncate(time.Second).String(),
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.ping(ctx); err != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
		return status, false
	}
	return status, true
}
