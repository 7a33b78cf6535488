// Package main is the entry point for the coload application.
//
// @title           Coload Storage API
// @version         1.0.0
// @description     API for pricing and starting trading-card storage subscriptions.
//
//	Quotes a monthly or yearly price from raw card counts, slabbed card
//	counts, and sealed-product box dimensions, and creates checkout
//	sessions with the payment provider.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/kyhorne/coload
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer session token. Required for checkout when authentication is enabled.
//
// @tag.name        Pricing
// @tag.description Quote and rate table operations
//
// @tag.name        Checkout
// @tag.description Checkout session operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/kyhorne/coload/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/kyhorne/coload/config"
	"github.com/kyhorne/coload/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
