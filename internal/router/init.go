package router

import (
	"github.com/seunghun-dev/go-board-api/internal/application"
	"github.com/seunghun-dev/go-board-api/internal/container"
	pginfra "github.com/seunghun-dev/go-board-api/internal/infrastructure/postgres"
	handlers "github.com/seunghun-dev/go-board-api/internal/interface/http"
	"github.com/seunghun-dev/go-board-api/internal/router/modules"
)

// InitModules builds all feature modules and registers them with the registry.
// Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, logger)
	postSvc := application.NewPostService(postRepo, userRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
}
