package client

import (
	"context"

	"github.com/dmitrijs2005/studentdir/internal/client/models"
)

// Client is the students API contract.
type Client interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, s models.Student) (models.Student, error)
	Update(ctx context.Context, id string, s models.Student, adminPassword string) (models.Student, error)
	Delete(ctx context.Context, id string, adminPassword string) error
}
