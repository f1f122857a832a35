package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/leadscope-api/internal/application/usecase"
	"github.com/jhoicas/leadscope-api/internal/domain/repository"
	infrafirestore "github.com/jhoicas/leadscope-api/internal/infrastructure/firestore"
	infrarest "github.com/jhoicas/leadscope-api/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/leadscope-api/internal/interfaces/http"
	"github.com/jhoicas/leadscope-api/pkg/config"
	"github.com/jhoicas/leadscope-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Selección del backend en el despliegue: exactamente un adaptador por
	// proceso; el resto de la app depende solo de la fachada.
	var (
		leadRepo repository.LeadRepository
		noteRepo repository.NoteRepository
		userRepo repository.UserRepository
	)
	switch cfg.Backend.Driver {
	case config.BackendFirestore:
		client, err := infrafirestore.NewClient(ctx, cfg.Firestore)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión al document store")
		}
		defer client.Close()
		leadRepo = infrafirestore.NewLeadRepository(client, log)
		noteRepo = infrafirestore.NewNoteRepository(client)
		userRepo = infrafirestore.NewUserRepository(client)
	case config.BackendREST:
		client := infrarest.NewClient(cfg.REST)
		leadRepo = infrarest.NewLeadRepository(client)
		noteRepo = infrarest.NewNoteRepository(client)
		userRepo = infrarest.NewUserRepository(client)
	}

	leadUC := usecase.NewLeadUseCase(leadRepo, noteRepo, log)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Leadscope API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": cfg.Backend.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LeadUC:    leadUC,
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando…")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
