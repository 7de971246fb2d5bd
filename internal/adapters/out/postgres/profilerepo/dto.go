// Package profilerepo provides data transfer objects and mapping functions
// for profile persistence. Profiles live in the legacy "usuarios" table,
// which stores roles as a comma-joined list ("dador,operador").
package profilerepo

import (
	"github.com/google/uuid"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
)

// ProfileDTO represents the database structure for persisting profiles.
type ProfileDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	PersonType  string    `gorm:"type:varchar(32);not null"`
	Roles       string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(64)"`
}

// TableName overrides GORM's default naming to the legacy "usuarios" table.
func (ProfileDTO) TableName() string {
	return "usuarios"
}

// fromDomain converts a profile aggregate to its database representation.
func fromDomain(agg *account.Profile) ProfileDTO {
	return ProfileDTO{
		ID:          agg.ID().Bytes(),
		DisplayName: agg.DisplayName(),
		PersonType:  agg.PersonType().String(),
		Roles:       account.JoinRoles(agg.Roles()),
		Email:       agg.Email(),
		Phone:       agg.Phone(),
	}
}

// toDomain converts a database DTO to a profile aggregate. The phone number
// passes through the canonical formatter again, which is idempotent.
func toDomain(dto ProfileDTO) (*account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	personType, err := account.PersonTypeFromString(dto.PersonType)
	if err != nil {
		return nil, err
	}

	roles, err := account.ParseRoles(dto.Roles)
	if err != nil {
		return nil, err
	}

	return account.NewProfile(id, dto.DisplayName, personType, roles, dto.Email, dto.Phone)
}
