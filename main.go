package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tasklistgen/collections"
	"tasklistgen/config"
	"tasklistgen/handlers"
)

func main() {
	app := pocketbase.New()

	var resourceDir, configFile string
	app.RootCmd.PersistentFlags().StringVar(&resourceDir, "resources", "",
		"directory holding assets/psa_tasklist_template.json (overrides the config file)")
	app.RootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile,
		"path to the optional YAML settings file")
	app.RootCmd.ParseFlags(os.Args[1:])

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal(err)
	}
	if resourceDir != "" {
		cfg.ResourceDir = resourceDir
	}

	app.RootCmd.AddCommand(newTasklistCommand(app, cfg))

	// Create the template collection and seed it on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.SeedTemplate(app, cfg.ResourceDir); err != nil {
			log.Printf("Warning: template seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(registerRoutes(app, cfg))

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// registerRoutes binds the template and tasklist API.
func registerRoutes(app *pocketbase.PocketBase, cfg config.Config) func(se *core.ServeEvent) error {
	return func(se *core.ServeEvent) error {
		// ── Template ─────────────────────────────────────────────
		se.Router.GET("/api/template", handlers.HandleTemplateRead(cfg.ResourceDir))
		se.Router.GET("/api/template/tasks", handlers.HandleTemplateTaskList(app))
		se.Router.PATCH("/api/template/tasks/{id}", handlers.HandleTemplateTaskUpdate(app))

		// ── Tasklist ─────────────────────────────────────────────
		se.Router.GET("/api/tasklist/options", handlers.HandleTasklistOptions(cfg))
		se.Router.POST("/api/tasklist/preview", handlers.HandleTasklistPreview(app, cfg))
		se.Router.POST("/api/tasklist/export", handlers.HandleTasklistExport())
		se.Router.POST("/api/tasklist/download", handlers.HandleTasklistDownload(app, cfg))
		se.Router.POST("/api/tasklist/pdf", handlers.HandleTasklistPDF(app, cfg))

		return se.Next()
	}
}
