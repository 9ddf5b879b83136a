// Package clientrepo provides data transfer objects and mapping functions for
// client account persistence.
package clientrepo

import (
	"packtrack/internal/core/domain/model/client"
)

// ClientDTO represents the database structure for persisting client accounts.
// Email and the national ID number carry unique indexes; violating either
// surfaces as gorm.ErrDuplicatedKey and is mapped to a conflict error.
type ClientDTO struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Lastname     string `gorm:"not null"`
	IDNumber     string `gorm:"column:id_number;uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string `gorm:"not null"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Lastname:     aggregate.Lastname(),
		IDNumber:     aggregate.IDNumber(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(
		dto.ID, dto.Name, dto.Lastname, dto.IDNumber, dto.Email, dto.PasswordHash, dto.Phone)
}
