package service

import (
	"github.com/dkordic/noteboard/internal/config"
	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/internal/store"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		NoteService: NewNoteService(storages.NoteRepository, storages.UserRepository, logger),
	}
}
