// Package skillrepo provides the GORM persistence of skills.
package skillrepo

import (
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"

	"github.com/google/uuid"
)

// SkillDTO represents the database structure for persisting skills.
type SkillDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName specifies the database table name for skills.
func (SkillDTO) TableName() string {
	return "skills"
}

// FromDomain converts a skill to its database representation.
func FromDomain(aggregate *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// ToDomain converts a database row back to a skill. Exported because developer
// rows preload their skills through the join table.
func ToDomain(dto SkillDTO) (*skill.Skill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return skill.RestoreSkill(id, dto.Name)
}
