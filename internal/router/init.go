package router

import (
	"github.com/minhasfinancas/api/internal/application"
	"github.com/minhasfinancas/api/internal/container"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
	"github.com/minhasfinancas/api/internal/infrastructure/memory"
	pginfra "github.com/minhasfinancas/api/internal/infrastructure/postgres"
	handlers "github.com/minhasfinancas/api/internal/interface/http"
	"github.com/minhasfinancas/api/internal/router/modules"
)

func buildRepositories() (repo.UserRepository, repo.EntryRepository) {
	if container.GetConfig().DBDriver == "memory" {
		return memory.NewUserRepository(), memory.NewEntryRepository()
	}
	pool := container.GetPGPool()
	return pginfra.NewUserRepository(pool), pginfra.NewEntryRepository(pool)
}

// InitModules builds the services and handlers from the container
// singletons and registers every feature module with the router registry.
// Called once during startup.
func InitModules(r *Registry) {
	users, entries := buildRepositories()
	logger := container.GetLogger()

	userSvc := application.NewUserService(users, container.GetPasswords(), logger)
	entrySvc := application.NewEntryService(entries, users, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewEntryModule(handlers.NewEntryHandler(entrySvc, userSvc, logger)))
}
