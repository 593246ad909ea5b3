package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/digiration/digiration/internal/pkg/models"
)

// AuthRepo implements auth.AuthRepo on the relational store
type AuthRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg: cfg,
		db:  db,
	}
}
