package api

import (
	"go.uber.org/zap"

	"github.com/spectriclabs/hotcold/internal/config"
)

type API struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

func NewAPI(cfg *config.Config, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		Cfg:    cfg,
		Logger: logger,
	}
}
