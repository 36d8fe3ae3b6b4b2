package developerrepo

import (
	"context"
	"errors"

	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/ports"
	"devbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeveloperRepository implements DeveloperRepository using GORM.
type GormDeveloperRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeveloperRepository creates a new GORM developer repository.
func NewGormDeveloperRepository(db *gorm.DB, tracker aggregateTracker) *GormDeveloperRepository {
	return &GormDeveloperRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new developer and its join rows. When the repository is bound to an
// outer transaction the writes run inside a savepoint.
func (r *GormDeveloperRepository) Add(ctx context.Context, aggregate *developer.Developer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}
		return createJoinRows(tx, dto.Skills)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves profile changes and replaces the join rows. bookings_count is not
// written here; it only moves through IncrementBookingsCount and RecountBookings.
func (r *GormDeveloperRepository) Update(ctx context.Context, aggregate *developer.Developer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&DeveloperDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
			"user_id":         dto.UserID,
			"first_name":      dto.FirstName,
			"last_name":       dto.LastName,
			"bio":             dto.Bio,
			"github_username": dto.GithubUsername,
			"hourly_rate":     dto.HourlyRate,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("developer", aggregate.ID().String())
		}

		if err := deleteJoinRows(tx, dto.ID); err != nil {
			return err
		}
		return createJoinRows(tx, dto.Skills)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a developer by ID.
func (r *GormDeveloperRepository) Get(ctx context.Context, id kernel.UUID) (*developer.Developer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeveloperDTO
	if err := r.withSkills(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("developer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUser retrieves the developer profile of a user.
func (r *GormDeveloperRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*developer.Developer, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DeveloperDTO
	if err := r.withSkills(ctx).
		Order("created_at ASC").
		First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user_id", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a developer and its join rows. Skills are left in place.
func (r *GormDeveloperRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, id.Bytes()); err != nil {
			return err
		}

		result := tx.Delete(&DeveloperDTO{}, "id = ?", id.Bytes())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("developer", id.String())
		}
		return nil
	})
}

// All lists every developer in the given order.
func (r *GormDeveloperRepository) All(ctx context.Context, sort ports.SortBy) ([]*developer.Developer, error) {
	var dtos []DeveloperDTO
	if err := r.withSkills(ctx).Order(orderClause(sort)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindBySkill lists developers with a skill whose name contains skill, ignoring case.
// The match is an EXISTS subquery so a developer with several matching skills is
// returned once.
//
// Example:
//
//	rubyists, err := repo.FindBySkill(ctx, "rub", ports.DefaultSort)
func (r *GormDeveloperRepository) FindBySkill(
	ctx context.Context,
	skill string,
	sort ports.SortBy,
) ([]*developer.Developer, error) {
	var dtos []DeveloperDTO
	if err := r.withSkills(ctx).
		Where(`EXISTS (
			SELECT 1 FROM developer_skills
			JOIN skills ON skills.id = developer_skills.skill_id
			WHERE developer_skills.developer_id = developers.id
			AND skills.name ILIKE ? ESCAPE '\'
		)`, likePattern(skill)).
		Order(orderClause(sort)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindByPriceRange lists developers with minRate <= hourly_rate <= maxRate.
// An inverted range matches no row.
func (r *GormDeveloperRepository) FindByPriceRange(
	ctx context.Context,
	minRate, maxRate decimal.Decimal,
	sort ports.SortBy,
) ([]*developer.Developer, error) {
	if minRate.GreaterThan(maxRate) {
		return []*developer.Developer{}, nil
	}

	var dtos []DeveloperDTO
	if err := r.withSkills(ctx).
		Where("hourly_rate >= ? AND hourly_rate <= ?", minRate, maxRate).
		Order(orderClause(sort)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Top lists at most limit developers by bookings_count, then hourly_rate, both descending.
func (r *GormDeveloperRepository) Top(ctx context.Context, limit int) ([]*developer.Developer, error) {
	if limit <= 0 {
		return []*developer.Developer{}, nil
	}

	var dtos []DeveloperDTO
	if err := r.withSkills(ctx).
		Order(orderClause(ports.TopSort)).
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Top6 lists the six most booked developers.
func (r *GormDeveloperRepository) Top6(ctx context.Context) ([]*developer.Developer, error) {
	return r.Top(ctx, ports.TopDevelopersLimit)
}

// IncrementBookingsCount adds one to the counter without touching other columns.
func (r *GormDeveloperRepository) IncrementBookingsCount(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DeveloperDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("bookings_count", gorm.Expr("bookings_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("developer", id.String())
	}

	return nil
}

// RecountBookings sets every counter to the number of stored bookings and reports
// how many rows were out of date.
func (r *GormDeveloperRepository) RecountBookings(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE developers SET bookings_count = counts.total
		FROM (
			SELECT developers.id, COUNT(bookings.id) AS total
			FROM developers
			LEFT JOIN bookings ON bookings.developer_id = developers.id
			GROUP BY developers.id
		) AS counts
		WHERE developers.id = counts.id AND developers.bookings_count <> counts.total`)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormDeveloperRepository) withSkills(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("developer_skills.position ASC")
		}).
		Preload("Skills.Skill")
}

func createJoinRows(tx *gorm.DB, rows []DeveloperSkillDTO) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

func deleteJoinRows(tx *gorm.DB, developerID any) error {
	return tx.Where("developer_id = ?", developerID).Delete(&DeveloperSkillDTO{}).Error
}
