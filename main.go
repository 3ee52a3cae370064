package main

import (
	"Gin_postgres_library_api/app"
	"Gin_postgres_library_api/config"
	"Gin_postgres_library_api/routes"
	"log"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := config.GetEnv("PORT", "3000")
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
