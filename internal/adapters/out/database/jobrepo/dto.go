// Package jobrepo provides the GORM persistence of job aggregates: the jobs
// table mapping and the Job Store repository.
package jobrepo

import (
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Recurrence columns are NULL for one-time jobs.
type JobDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccountID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_jobs_account_day,priority:1"`
	Title             string     `gorm:"size:200;not null"`
	Address           string     `gorm:"size:500;not null;default:''"`
	CustomerID        *uuid.UUID `gorm:"type:uuid"`
	Status            int        `gorm:"not null"`
	IsRecurring       bool       `gorm:"not null;default:false"`
	RecurrencePattern *int
	RecurringStatus   *int
	ScheduledDay      *int `gorm:"index:idx_jobs_account_day,priority:2"`
	LastServiceDate   *time.Time
	CompletionCount   int `gorm:"not null;default:0"`
	Version           int `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	dto := JobDTO{
		ID:              j.ID().Bytes(),
		AccountID:       j.AccountID().Bytes(),
		Title:           j.Title(),
		Address:         j.Address(),
		CustomerID:      kernel.PtrBytes(j.CustomerID()),
		Status:          int(j.Status()),
		IsRecurring:     j.IsRecurring(),
		LastServiceDate: j.LastServiceDate(),
		CompletionCount: j.CompletionCount(),
		Version:         j.Version(),
	}

	if j.IsRecurring() {
		pattern, status := int(j.Pattern()), int(j.RecurringStatus())
		dto.RecurrencePattern = &pattern
		dto.RecurringStatus = &status
	}
	if day := j.ScheduledDay(); day != nil {
		weekday := int(*day)
		dto.ScheduledDay = &weekday
	}

	return dto
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromPtr(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	params := job.RestoreParams{
		ID:        id,
		AccountID: accountID,
		Details: job.Details{
			Title:      dto.Title,
			Address:    dto.Address,
			CustomerID: customerID,
		},
		Status:          job.Status(dto.Status),
		IsRecurring:     dto.IsRecurring,
		CompletionCount: dto.CompletionCount,
		Version:         dto.Version,
	}
	if dto.RecurrencePattern != nil {
		params.Pattern = job.Pattern(*dto.RecurrencePattern)
	}
	if dto.RecurringStatus != nil {
		params.RecurringStatus = job.RecurringStatus(*dto.RecurringStatus)
	}
	if dto.ScheduledDay != nil {
		params.ScheduledDay = kernel.Weekday(*dto.ScheduledDay).Ptr()
	}
	if dto.LastServiceDate != nil {
		serviced := dto.LastServiceDate.UTC()
		params.LastServiceDate = &serviced
	}

	return job.RestoreJob(params)
}
