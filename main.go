package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/zunde-outreach/checkin-api/cmd/app"
)

// @title           Zunde check-in API
// @version         1.0
// @description     Event registration, ticketing and bus check-in for outreach events.
//
// @contact.name   Zunde Outreach
// @contact.email  admin@zunde.com
//
// @BasePath  /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
