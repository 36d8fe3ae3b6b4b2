// Package projectrepo provides the GORM persistence of developer projects.
package projectrepo

import (
	"time"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/project"

	"github.com/google/uuid"
)

// ProjectDTO represents the database structure for persisting projects.
type ProjectDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeveloperID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for projects.
func (ProjectDTO) TableName() string {
	return "projects"
}

func fromDomain(aggregate *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          aggregate.ID().Bytes(),
		DeveloperID: aggregate.DeveloperID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

func toDomain(dto ProjectDTO) (*project.Project, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	developerID, err := kernel.UUIDFromBytes(dto.DeveloperID[:])
	if err != nil {
		return nil, err
	}

	return project.RestoreProject(id, developerID, dto.Name, dto.Description)
}
