package services_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleReconciler_Reconcile(t *testing.T) {
	reconciler := services.NewScheduleReconciler()

	t.Run("should schedule referenced and release the rest", func(t *testing.T) {
		placed := restoreJob(t, job.Pending, job.NoPattern, job.NoRecurringStatus, nil)
		stale := restoreJob(t, job.Scheduled, job.NoPattern, job.NoRecurringStatus, nil)
		require.NoError(t, stale.ScheduleOn(kernel.Friday))
		idle := restoreJob(t, job.Pending, job.NoPattern, job.NoRecurringStatus, nil)

		r, err := route.NewRoute(kernel.NewUUID(), placed.AccountID(), kernel.Wednesday, 0, "", []kernel.UUID{placed.ID()}, route.NoAssignee())
		require.NoError(t, err)

		changed, err := reconciler.Reconcile([]*route.Route{r}, []*job.Job{placed, stale, idle})

		require.NoError(t, err)
		assert.Len(t, changed, 2)
		assert.Equal(t, kernel.Wednesday, *placed.ScheduledDay())
		assert.Equal(t, job.Scheduled, placed.Status())
		assert.Nil(t, stale.ScheduledDay())
		assert.Nil(t, idle.ScheduledDay())
	})

	t.Run("should skip jobs already in place", func(t *testing.T) {
		j := restoreJob(t, job.Pending, job.NoPattern, job.NoRecurringStatus, nil)
		require.NoError(t, j.ScheduleOn(kernel.Monday))
		r, err := route.NewRoute(kernel.NewUUID(), j.AccountID(), kernel.Monday, 0, "", []kernel.UUID{j.ID()}, route.NoAssignee())
		require.NoError(t, err)

		changed, err := reconciler.Reconcile([]*route.Route{r}, []*job.Job{j})

		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("should fail for a completed one-time job", func(t *testing.T) {
		j := restoreJob(t, job.Pending, job.NoPattern, job.NoRecurringStatus, nil)
		require.NoError(t, j.Complete(time.Now()))
		r, err := route.NewRoute(kernel.NewUUID(), j.AccountID(), kernel.Monday, 0, "", []kernel.UUID{j.ID()}, route.NoAssignee())
		require.NoError(t, err)

		_, err = reconciler.Reconcile([]*route.Route{r}, []*job.Job{j})

		require.Error(t, err)
	})
}
