package lead

import (
	"context"

	"gorm.io/gorm"

	"dnfapi/internal/database"
)

// Repository persists leads.
type Repository interface {
	Create(ctx context.Context, lead *Lead) error
}

// GormRepository stores leads through the shared connection pool.
type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create inserts a new lead with a one-shot pooled execution.
func (r *GormRepository) Create(ctx context.Context, lead *Lead) error {
	return database.Classify(r.db.WithContext(ctx).Create(lead).Error)
}
