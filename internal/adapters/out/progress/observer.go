// Package progress is the boundary to the progress tracking collaborator.
// The service does not own progress or gamification state; it only reports
// committed completions, which this adapter records in the structured log.
package progress

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/logging"

	"go.uber.org/zap"
)

// LogObserver reports completions as log entries, one per job.
type LogObserver struct {
	logger *zap.SugaredLogger
}

func NewLogObserver(logger *zap.SugaredLogger) *LogObserver {
	return &LogObserver{logger: logging.Component(logger, "progress")}
}

func (o *LogObserver) JobsCompleted(_ context.Context, accountID kernel.UUID, jobs []*job.Job) {
	for _, j := range jobs {
		o.logger.Infow("job completed",
			logging.FieldAccountID, accountID.String(),
			logging.FieldJobID, j.ID().String(),
			logging.FieldCount, j.CompletionCount(),
			"recurring", j.IsRecurring(),
		)
	}
}
