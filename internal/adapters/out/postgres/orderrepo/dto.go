// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The numeric primary key is store-generated; the tracking code carries a
// unique index that backs the collision-retry in Add. Soft deletion goes
// through gorm.DeletedAt so deleted rows vanish from every default query.
type OrderDTO struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	TrackCode uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ClientID  uint64    `gorm:"index;not null"`

	Sender SenderDTO `gorm:"embedded;embeddedPrefix:sender_"`

	PackageType             string `gorm:"type:varchar(32);not null"`
	DestinationDepartment   string `gorm:"not null"`
	DestinationMunicipality string `gorm:"not null"`
	RecipientName           string `gorm:"not null"`
	DestinationAddress      string `gorm:"not null"`

	StatusID  int `gorm:"index;not null"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// SenderDTO represents the embedded sender snapshot within the order table.
// Captured once at submission and never updated afterwards.
type SenderDTO struct {
	Name         string `gorm:"not null"`
	Lastname     string `gorm:"not null"`
	IDNumber     string `gorm:"column:id_number;not null"`
	Department   string `gorm:"not null"`
	Municipality string `gorm:"not null"`
	Address      string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	Email        string `gorm:"not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	sender := aggregate.Sender()
	shipment := aggregate.Shipment()

	return OrderDTO{
		ID:        aggregate.ID(),
		TrackCode: aggregate.TrackCode().UUID(),
		ClientID:  aggregate.ClientID(),
		Sender: SenderDTO{
			Name:         sender.Name,
			Lastname:     sender.Lastname,
			IDNumber:     sender.IDNumber,
			Department:   sender.Department,
			Municipality: sender.Municipality,
			Address:      sender.Address,
			Phone:        sender.Phone,
			Email:        sender.Email,
		},
		PackageType:             shipment.PackageType.String(),
		DestinationDepartment:   shipment.DestinationDepartment,
		DestinationMunicipality: shipment.DestinationMunicipality,
		RecipientName:           shipment.RecipientName,
		DestinationAddress:      shipment.DestinationAddress,
		StatusID:                int(aggregate.Status()),
		CreatedAt:               aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so a corrupt row
// fails loudly instead of producing an invalid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	trackCode, err := kernel.TrackCodeFromString(dto.TrackCode.String())
	if err != nil {
		return nil, err
	}

	packageType, err := order.ParsePackageType(dto.PackageType)
	if err != nil {
		return nil, err
	}

	sender := order.Sender{
		Name:         dto.Sender.Name,
		Lastname:     dto.Sender.Lastname,
		IDNumber:     dto.Sender.IDNumber,
		Department:   dto.Sender.Department,
		Municipality: dto.Sender.Municipality,
		Address:      dto.Sender.Address,
		Phone:        dto.Sender.Phone,
		Email:        dto.Sender.Email,
	}

	shipment := order.Shipment{
		PackageType:             packageType,
		DestinationDepartment:   dto.DestinationDepartment,
		DestinationMunicipality: dto.DestinationMunicipality,
		RecipientName:           dto.RecipientName,
		DestinationAddress:      dto.DestinationAddress,
	}

	return order.RestoreOrder(
		dto.ID, trackCode, dto.ClientID, sender, shipment, order.Status(dto.StatusID), dto.CreatedAt)
}
