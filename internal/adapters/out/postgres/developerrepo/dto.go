// Package developerrepo provides data transfer objects and the GORM repository for
// developer aggregates. A developer row owns its developer_skills join rows; the
// skills table itself belongs to skillrepo.
package developerrepo

import (
	"time"

	"devbook/internal/adapters/out/postgres/skillrepo"
	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeveloperDTO represents the database structure for persisting developer aggregates.
type DeveloperDTO struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID         *uuid.UUID          `gorm:"type:uuid;index"`
	FirstName      string              `gorm:"type:varchar(255);not null"`
	LastName       string              `gorm:"type:varchar(255);not null"`
	Bio            string              `gorm:"type:text;not null"`
	GithubUsername string              `gorm:"type:varchar(255);not null"`
	HourlyRate     decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0;index"`
	BookingsCount  int                 `gorm:"type:int;not null;default:0"`
	Skills         []DeveloperSkillDTO `gorm:"foreignKey:DeveloperID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for developer entities.
func (DeveloperDTO) TableName() string {
	return "developers"
}

// DeveloperSkillDTO is a row of the developer/skill join table. Position keeps
// the order in which skills were attached.
type DeveloperSkillDTO struct {
	DeveloperID uuid.UUID          `gorm:"type:uuid;primaryKey"`
	SkillID     uuid.UUID          `gorm:"type:uuid;primaryKey;index"`
	Position    int                `gorm:"type:int;not null"`
	Skill       skillrepo.SkillDTO `gorm:"foreignKey:SkillID;references:ID"`
}

// TableName specifies the database table name for join rows.
func (DeveloperSkillDTO) TableName() string {
	return "developer_skills"
}

// fromDomain converts a developer aggregate to its database representation.
// Join rows carry only keys; the referenced skills must already exist.
func fromDomain(aggregate *developer.Developer) DeveloperDTO {
	developerID := aggregate.ID().Bytes()

	var userID *uuid.UUID
	if aggregate.UserID() != nil {
		raw := aggregate.UserID().Bytes()
		userID = &raw
	}

	joinRows := make([]DeveloperSkillDTO, 0, len(aggregate.Skills()))
	for i, s := range aggregate.Skills() {
		joinRows = append(joinRows, DeveloperSkillDTO{
			DeveloperID: developerID,
			SkillID:     s.ID().Bytes(),
			Position:    i,
		})
	}

	return DeveloperDTO{
		ID:             developerID,
		UserID:         userID,
		FirstName:      aggregate.FirstName(),
		LastName:       aggregate.LastName(),
		Bio:            aggregate.Bio(),
		GithubUsername: aggregate.GithubUsername(),
		HourlyRate:     aggregate.HourlyRate(),
		BookingsCount:  aggregate.BookingsCount(),
		Skills:         joinRows,
	}
}

// toDomain converts a database DTO with preloaded skills to a developer aggregate.
func toDomain(dto DeveloperDTO) (*developer.Developer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	skills := make([]*skill.Skill, 0, len(dto.Skills))
	for _, row := range dto.Skills {
		s, skillErr := skillrepo.ToDomain(row.Skill)
		if skillErr != nil {
			return nil, skillErr
		}
		skills = append(skills, s)
	}

	return developer.RestoreDeveloper(id, developer.Attributes{
		UserID:         userID,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Bio:            dto.Bio,
		GithubUsername: dto.GithubUsername,
		HourlyRate:     dto.HourlyRate,
	}, dto.BookingsCount, skills)
}

func toDomainList(dtos []DeveloperDTO) ([]*developer.Developer, error) {
	developers := make([]*developer.Developer, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		developers = append(developers, d)
	}
	return developers, nil
}
