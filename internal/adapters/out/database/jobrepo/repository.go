package jobrepo

import (
	"context"
	"errors"
	"iter"

	"fieldservice/internal/adapters/out/database/dberr"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "job"

// pageSize bounds each query issued by Find, so no cursor stays open while
// the caller consumes the sequence.
const pageSize = 100

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker lets the unit of work undo in-memory version bumps on rollback.
type aggregateTracker interface {
	TrackAggregate(aggregate kernel.Versioned, previousVersion int)
}

var _ ports.JobRepository = (*GormJobRepository)(nil)

// NewGormJobRepository creates a new GORM job repository. tracker may be nil
// for read-only use.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	previous := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = previous + 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, entity)
	}

	r.track(aggregate, previous, dto.Version)
	return nil
}

// Update saves an existing job. The row must still carry the version the job
// was loaded with; otherwise a concurrent writer won and a write conflict is returned.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	previous := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = previous + 1

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND account_id = ? AND version = ?", dto.ID, dto.AccountID, previous).
		Select("*").
		Omit("id", "account_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return dberr.Translate(result.Error, entity)
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.AccountID(), aggregate.ID())
	}

	r.track(aggregate, previous, dto.Version)
	return nil
}

// Delete removes a job.
func (r *GormJobRepository) Delete(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ? AND version = ?",
			aggregate.ID().Bytes(), aggregate.AccountID().Bytes(), aggregate.Version()).
		Delete(&JobDTO{})
	if result.Error != nil {
		return dberr.Translate(result.Error, entity)
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.AccountID(), aggregate.ID())
	}
	return nil
}

// Get retrieves a job by ID within an account.
func (r *GormJobRepository) Get(ctx context.Context, accountID, id kernel.UUID) (*job.Job, error) {
	if err := errors.Join(accountID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND account_id = ?", id.Bytes(), accountID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, dberr.Translate(err, entity)
	}

	return toDomain(dto)
}

// GetMany retrieves jobs by ID within an account, keeping the requested order.
func (r *GormJobRepository) GetMany(ctx context.Context, accountID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*job.Job{}, nil
	}

	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND id IN ?", accountID.Bytes(), raw).
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, entity)
	}

	byID := make(map[kernel.UUID]*job.Job, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		byID[j.ID()] = j
	}

	jobs := make([]*job.Job, 0, len(ids))
	for _, id := range ids {
		j, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// ListScheduled retrieves every job of the account that has a weekday.
func (r *GormJobRepository) ListScheduled(ctx context.Context, accountID kernel.UUID) ([]*job.Job, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND scheduled_day IS NOT NULL", accountID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, entity)
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// Find returns a lazy sequence of matching jobs ordered by creation. Pages
// are fetched on demand; ranging again restarts from the first page.
func (r *GormJobRepository) Find(
	ctx context.Context,
	accountID kernel.UUID,
	filter ports.JobFilter,
) iter.Seq2[*job.Job, error] {
	return func(yield func(*job.Job, error) bool) {
		if err := accountID.Validate(); err != nil {
			yield(nil, err)
			return
		}

		for offset := 0; ; offset += pageSize {
			var page []JobDTO
			err := r.filtered(ctx, accountID, filter).
				Order("created_at, id").
				Limit(pageSize).
				Offset(offset).
				Find(&page).Error
			if err != nil {
				yield(nil, dberr.Translate(err, entity))
				return
			}

			for _, dto := range page {
				j, err := toDomain(dto)
				if !yield(j, err) || err != nil {
					return
				}
			}

			if len(page) < pageSize {
				return
			}
		}
	}
}

func (r *GormJobRepository) filtered(ctx context.Context, accountID kernel.UUID, filter ports.JobFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&JobDTO{}).Where("account_id = ?", accountID.Bytes())

	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, int(s))
		}
		query = query.Where("status IN ?", statuses)
	}

	switch {
	case filter.UnscheduledOnly:
		query = query.Where("scheduled_day IS NULL")
	case filter.ScheduledDay != nil:
		query = query.Where("scheduled_day = ?", int(*filter.ScheduledDay))
	}

	return query
}

// missingOrStale tells a vanished or foreign row apart from a lost version race.
func (r *GormJobRepository) missingOrStale(ctx context.Context, accountID, id kernel.UUID) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND account_id = ?", id.Bytes(), accountID.Bytes()).
		Count(&count).Error
	if err != nil {
		return dberr.Translate(err, entity)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("job", id.String())
	}
	return errs.NewWriteConflictError(entity)
}

func (r *GormJobRepository) track(aggregate *job.Job, previous, current int) {
	aggregate.SyncVersion(current)
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate, previous)
	}
}
