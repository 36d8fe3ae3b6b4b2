package skillrepo

import (
	"context"
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrSkillNameIsTaken is returned by Add when another skill already has the name.
var ErrSkillNameIsTaken = errs.NewValueIsInvalidErrorWithCause("name", gorm.ErrDuplicatedKey)

// GormSkillRepository implements SkillRepository using GORM.
type GormSkillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSkillRepository creates a new GORM skill repository.
func NewGormSkillRepository(db *gorm.DB, tracker aggregateTracker) *GormSkillRepository {
	return &GormSkillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new skill to the database.
func (r *GormSkillRepository) Add(ctx context.Context, aggregate *skill.Skill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSkillNameIsTaken
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a skill by ID.
func (r *GormSkillRepository) Get(ctx context.Context, id kernel.UUID) (*skill.Skill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SkillDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("skill", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetByName retrieves a skill by its exact name.
func (r *GormSkillRepository) GetByName(ctx context.Context, name string) (*skill.Skill, error) {
	var dto SkillDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("skill", name)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// FindByDeveloper lists the skills of a developer in the order they were attached.
func (r *GormSkillRepository) FindByDeveloper(ctx context.Context, developerID kernel.UUID) ([]*skill.Skill, error) {
	if err := developerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SkillDTO
	if err := r.db.WithContext(ctx).
		Table("skills").
		Select("skills.*").
		Joins("JOIN developer_skills ON developer_skills.skill_id = skills.id").
		Where("developer_skills.developer_id = ?", developerID.Bytes()).
		Order("developer_skills.position ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	skills := make([]*skill.Skill, 0, len(dtos))
	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	return skills, nil
}
