package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/digiration/digiration/internal/pkg/models"
)

// RationRepo implements rations.RationRepo on SQLite
type RationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRationRepo creates a new ration repository instance
func NewRationRepo(cfg *models.Config, db *sqlx.DB) *RationRepo {
	return &RationRepo{
		cfg: cfg,
		db:  db,
	}
}

// affected converts a result's row count into a took-effect boolean
func affected(result sql.Result) (bool, error) {
	count, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return count > 0, nil
}
