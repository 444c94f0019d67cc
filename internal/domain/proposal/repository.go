package proposal

import (
	"context"

	"gorm.io/gorm"

	"dnfapi/internal/database"
)

// Repository persists proposals. Create returns database.ErrConflict when
// the email was already used.
type Repository interface {
	Create(ctx context.Context, p *Proposal) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create runs the insert on a dedicated pooled connection. gorm returns the
// connection to the pool on every exit path, including panics.
func (r *GormRepository) Create(ctx context.Context, p *Proposal) error {
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Create(p).Error
	})
	return database.Classify(err)
}
