package commands_test

import (
	"testing"
	"time"

	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func validSender() order.Sender {
	return order.Sender{
		Name:         "Maria",
		Lastname:     "Lopez",
		IDNumber:     "0801-1990-12345",
		Department:   "Francisco Morazan",
		Municipality: "Tegucigalpa",
		Address:      "Col. Kennedy, casa 42",
		Phone:        "+504 9999-1234",
		Email:        "maria@example.com",
	}
}

func validShipment() order.Shipment {
	return order.Shipment{
		PackageType:             order.PackageDocuments,
		DestinationDepartment:   "Cortes",
		DestinationMunicipality: "San Pedro Sula",
		RecipientName:           "Juan Perez",
		DestinationAddress:      "Barrio El Centro, edificio 3",
	}
}

func storedOrder(t *testing.T, id, clientID uint64, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(
		id, kernel.NewTrackCode(), clientID, validSender(), validShipment(), status, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func storedClient(t *testing.T, id uint64) *client.Client {
	t.Helper()
	aggregate, err := client.RestoreClient(
		id, "Maria", "Lopez", "0801-1990-12345", "maria@example.com",
		"$2a$10$fakehashfakehashfakehashfakehash", "+504 9999-1234")
	require.NoError(t, err)
	return aggregate
}
