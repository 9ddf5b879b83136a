package ports

import (
	"context"

	"packtrack/internal/core/domain/model/client"
)

// ClientRepository defines the persistence contract for client accounts.
type ClientRepository interface {
	// Add persists a new client and binds the store-generated numeric id.
	// Uniqueness of email and ID number is enforced by the store.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by numeric id.
	Get(ctx context.Context, id uint64) (*client.Client, error)

	// GetByEmail retrieves a client by its unique email address.
	GetByEmail(ctx context.Context, email string) (*client.Client, error)

	// ExistsByEmailOrIDNumber reports whether any client already uses the
	// email address or the national ID number. Registration checks this
	// before inserting.
	ExistsByEmailOrIDNumber(ctx context.Context, email, idNumber string) (bool, error)
}
