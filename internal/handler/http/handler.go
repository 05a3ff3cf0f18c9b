package http

import (
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/service"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
)

type Handler struct {
	services *service.Services

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		uuid:     utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
