package main

import (
	"github.com/rs/zerolog/log"

	"github.com/owvision/ow-agent/go-service/common"
	"github.com/owvision/ow-agent/go-service/teambar"
)

func registerAll() {
	// Register all custom components from each package
	teambar.Register()
	common.Register()

	log.Info().
		Msg("All custom components registered successfully")
}
