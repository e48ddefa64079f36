package repository

import (
	"github.com/sysu-ecnc-dev/muster/backend/internal/config"
)

type Repository struct {
	cfg *config.Config
	kv  KVStore
}

func NewRepository(cfg *config.Config, kv KVStore) *Repository {
	return &Repository{
		cfg: cfg,
		kv:  kv,
	}
}
