package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PartnerAssignmentJob manages the scheduled assignment of delivery partners
// to orders that are ready for pickup.
type PartnerAssignmentJob struct {
	handler  commands.AssignDeliveryPartnerCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPartnerAssignmentJob creates a new job for assigning delivery partners.
// The schedule uses six-field cron syntax with a seconds column.
func NewPartnerAssignmentJob(
	handler commands.AssignDeliveryPartnerCommandHandler, schedule string, logger *slog.Logger,
) *PartnerAssignmentJob {
	return &PartnerAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "partner_assignment_job"),
	}
}

// Start begins the partner assignment job on its configured schedule.
func (j *PartnerAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAssignDeliveryPartnerCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue or pool is a normal outcome, not a failure.
			if errors.Is(err, commands.ErrNoOrderToAssign) || errors.Is(err, commands.ErrNoPartnerAvailable) {
				j.logger.DebugContext(ctx, "Nothing to assign", "reason", err)
				return
			}
			j.logger.ErrorContext(ctx, "Partner assignment job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Partner assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the partner assignment job.
func (j *PartnerAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Partner assignment job stopped")
}
