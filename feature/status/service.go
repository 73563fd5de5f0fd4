package status

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"social-network/core/database"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// Service runs the readiness checks.
type Service struct {
	db      *database.Handle
	tables  []string
	started time.Time
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a readiness service. tables are the SQL tables that must
// exist; they are not checked on MongoDB.
func NewService(db *database.Handle, tables []string, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		tables:  tables,
		started: time.Now(),
		logger:  logger,
		now:     time.Now,
	}
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// Health reports liveness. It never touches the database.
func (s *Service) Health() Health {
	return Health{Status: statusHealthy, Timestamp: unixSeconds(s.now())}
}

// Ready runs every check. The report is healthy only when all checks pass.
func (s *Service) Ready(ctx context.Context) Readiness {
	r := Readiness{
		Status:    statusHealthy,
		Timestamp: unixSeconds(s.now()),
		Checks:    map[string]Check{},
	}

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("Readiness database ping failed", zap.Error(err))
		r.Checks["database"] = Check{Status: checkFailed, Error: err.Error()}
		r.Status = statusUnhealthy
	} else {
		r.Checks["database"] = Check{Status: checkOK}
		if !s.db.IsMongo() {
			r.Checks["schema"] = s.schema()
			if r.Checks["schema"].Status != checkOK {
				r.Status = statusUnhealthy
			}
		}
	}

	p, err := s.process(ctx)
	if err != nil {
		s.logger.Debug("Process stats unavailable", zap.Error(err))
	}
	r.Process = p
	return r
}

func (s *Service) schema() Check {
	report, err := database.CheckSchema(s.db.SQL, s.tables)
	if err != nil {
		return Check{Status: checkFailed, Error: err.Error()}
	}
	if !report.OK() {
		return Check{Status: checkFailed, Error: "missing tables", Tables: report.Missing}
	}
	return Check{Status: checkOK}
}

func (s *Service) process(ctx context.Context) (*Process, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect process %d: %w", pid, err)
	}

	out := &Process{
		PID:           pid,
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: s.now().Sub(s.started).Seconds(),
	}
	if info, err := p.MemoryInfoWithContext(ctx); err == nil {
		out.RSSBytes = info.RSS
	}
	if cpu, err := p.CPUPercentWithContext(ctx); err == nil {
		out.CPUPercent = cpu
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		out.MemoryPercent = vm.UsedPercent
	}
	return out, nil
}
