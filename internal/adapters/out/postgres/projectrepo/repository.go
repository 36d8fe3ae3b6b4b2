package projectrepo

import (
	"context"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/project"

	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM.
type GormProjectRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProjectRepository creates a new GORM project repository.
func NewGormProjectRepository(db *gorm.DB, tracker aggregateTracker) *GormProjectRepository {
	return &GormProjectRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new project to the database.
func (r *GormProjectRepository) Add(ctx context.Context, aggregate *project.Project) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByDeveloper lists the projects of a developer, oldest first.
func (r *GormProjectRepository) FindByDeveloper(
	ctx context.Context,
	developerID kernel.UUID,
) ([]*project.Project, error) {
	if err := developerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProjectDTO
	if err := r.db.WithContext(ctx).
		Where("developer_id = ?", developerID.Bytes()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	projects := make([]*project.Project, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// DeleteByDeveloper removes every project of a developer.
func (r *GormProjectRepository) DeleteByDeveloper(ctx context.Context, developerID kernel.UUID) error {
	if err := developerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("developer_id = ?", developerID.Bytes()).
		Delete(&ProjectDTO{}).Error
}
