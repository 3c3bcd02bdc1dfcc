package orderauditworker

import (
	"context"
	candidatehandler "jobboard-backend/lib/candidate"
	baseworker "jobboard-backend/lib/utils/base-worker"
	"time"
)

// DensityChecker reports the jobs whose candidate orders are not 1..N
type DensityChecker interface {
	CheckDensity(ctx context.Context) (jobIDs []string, err error)
}

// StartWorker does nothing when interval is not positive
func StartWorker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("OrderAuditWorker", 30*time.Second, interval),
		checker:  candidatehandler.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	checker DensityChecker
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	jobIDs, err := i.checker.CheckDensity(ctx)
	if err != nil {
		logger.WithError(err).Error("failed to check candidate order density")
		return
	}
	for _, jobID := range jobIDs {
		logger.
			WithField("job_id", jobID).
			Warn("candidate order is not dense")
	}
}
