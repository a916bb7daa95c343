package routerepo

import (
	"context"
	"errors"
	"fmt"

	"fieldservice/internal/adapters/out/database/dberr"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "route"

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker lets the unit of work undo in-memory version bumps on rollback.
type aggregateTracker interface {
	TrackAggregate(aggregate kernel.Versioned, previousVersion int)
}

var _ ports.RouteRepository = (*GormRouteRepository)(nil)

// NewGormRouteRepository creates a new GORM route repository. tracker may be
// nil for read-only use.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new slot together with its job sequence.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	previous := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = previous + 1
	links := dto.Jobs
	dto.Jobs = nil

	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberr.Translate(err, entity)
	}
	if err := r.insertLinks(ctx, links); err != nil {
		return err
	}

	r.track(aggregate, previous, dto.Version)
	return nil
}

// Update saves position, name, assignee and job sequence of a slot, guarded
// by its version.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	previous := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = previous + 1
	links := dto.Jobs
	dto.Jobs = nil

	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ? AND account_id = ? AND version = ?", dto.ID, dto.AccountID, previous).
		Select("*").
		Omit("id", "account_id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return dberr.Translate(result.Error, entity)
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.AccountID(), aggregate.ID())
	}

	err := r.db.WithContext(ctx).Where("route_id = ?", dto.ID).Delete(&RouteJobDTO{}).Error
	if err != nil {
		return dberr.Translate(err, entity)
	}
	if err = r.insertLinks(ctx, links); err != nil {
		return err
	}

	r.track(aggregate, previous, dto.Version)
	return nil
}

// Delete removes a slot and its job sequence.
func (r *GormRouteRepository) Delete(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("route_id = ?", aggregate.ID().Bytes()).Delete(&RouteJobDTO{}).Error; err != nil {
		return dberr.Translate(err, entity)
	}

	result := db.Where("id = ? AND account_id = ? AND version = ?",
		aggregate.ID().Bytes(), aggregate.AccountID().Bytes(), aggregate.Version()).
		Delete(&RouteDTO{})
	if result.Error != nil {
		return dberr.Translate(result.Error, entity)
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.AccountID(), aggregate.ID())
	}
	return nil
}

// DeleteAll removes every slot of the account.
func (r *GormRouteRepository) DeleteAll(ctx context.Context, accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("account_id = ?", accountID.Bytes()).Delete(&RouteJobDTO{}).Error; err != nil {
		return dberr.Translate(err, entity)
	}
	if err := db.Where("account_id = ?", accountID.Bytes()).Delete(&RouteDTO{}).Error; err != nil {
		return dberr.Translate(err, entity)
	}
	return nil
}

// Get retrieves the slot at weekday and index.
func (r *GormRouteRepository) Get(
	ctx context.Context,
	accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
) (*route.Route, error) {
	if err := errors.Join(accountID.Validate(), weekday.Validate()); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.preloaded(ctx).
		First(&dto, "account_id = ? AND weekday = ? AND position = ?", accountID.Bytes(), int(weekday), index).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", slotKey{weekday, index})
		}
		return nil, dberr.Translate(err, entity)
	}
	return toDomain(dto)
}

// GetByID retrieves a slot by ID within an account.
func (r *GormRouteRepository) GetByID(ctx context.Context, accountID, id kernel.UUID) (*route.Route, error) {
	if err := errors.Join(accountID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.preloaded(ctx).First(&dto, "id = ? AND account_id = ?", id.Bytes(), accountID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, dberr.Translate(err, entity)
	}
	return toDomain(dto)
}

// ListByDay retrieves the slots of one weekday ordered by index.
func (r *GormRouteRepository) ListByDay(
	ctx context.Context,
	accountID kernel.UUID,
	weekday kernel.Weekday,
) ([]*route.Route, error) {
	if err := errors.Join(accountID.Validate(), weekday.Validate()); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.preloaded(ctx).
		Where("account_id = ? AND weekday = ?", accountID.Bytes(), int(weekday)).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, entity)
	}
	return toDomainAll(dtos)
}

// ListWeek retrieves all slots of the account ordered by weekday and index.
func (r *GormRouteRepository) ListWeek(ctx context.Context, accountID kernel.UUID) ([]*route.Route, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.preloaded(ctx).
		Where("account_id = ?", accountID.Bytes()).
		Order("weekday, position").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, entity)
	}
	return toDomainAll(dtos)
}

// ScheduledJobIDs lists every job placed in a slot of the account.
func (r *GormRouteRepository) ScheduledJobIDs(ctx context.Context, accountID kernel.UUID) ([]kernel.UUID, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var raw []RouteJobDTO
	err := r.db.WithContext(ctx).
		Select("job_id").
		Where("account_id = ?", accountID.Bytes()).
		Find(&raw).Error
	if err != nil {
		return nil, dberr.Translate(err, entity)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, link := range raw {
		id, err := kernel.UUIDFromBytes(link.JobID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FindByJob returns the slot holding jobID, or nil when the job is in no slot.
func (r *GormRouteRepository) FindByJob(ctx context.Context, accountID, jobID kernel.UUID) (*route.Route, error) {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}

	var link RouteJobDTO
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND job_id = ?", accountID.Bytes(), jobID.Bytes()).
		Take(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // a job outside every slot is not an error
		}
		return nil, dberr.Translate(err, entity)
	}

	routeID, err := kernel.UUIDFromBytes(link.RouteID[:])
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, accountID, routeID)
}

func (r *GormRouteRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Jobs", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormRouteRepository) insertLinks(ctx context.Context, links []RouteJobDTO) error {
	if len(links) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return dberr.Translate(err, entity)
	}
	return nil
}

func (r *GormRouteRepository) missingOrStale(ctx context.Context, accountID, id kernel.UUID) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ? AND account_id = ?", id.Bytes(), accountID.Bytes()).
		Count(&count).Error
	if err != nil {
		return dberr.Translate(err, entity)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("route", id.String())
	}
	return errs.NewWriteConflictError(entity)
}

func (r *GormRouteRepository) track(aggregate *route.Route, previous, current int) {
	aggregate.SyncVersion(current)
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate, previous)
	}
}

func toDomainAll(dtos []RouteDTO) ([]*route.Route, error) {
	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, nil
}

// slotKey renders a slot coordinate in not found errors.
type slotKey struct {
	weekday kernel.Weekday
	index   int
}

func (k slotKey) String() string {
	return fmt.Sprintf("%s/%d", k.weekday, k.index)
}
