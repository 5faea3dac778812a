package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/company-cli/internal/application/auth"
	"github.com/jhoicas/company-cli/internal/application/inventory"
	"github.com/jhoicas/company-cli/internal/application/usecase"
	"github.com/jhoicas/company-cli/internal/domain/repository"
	"github.com/jhoicas/company-cli/internal/infrastructure/memory"
	"github.com/jhoicas/company-cli/internal/infrastructure/postgres"
	"github.com/jhoicas/company-cli/internal/interfaces/cli"
	"github.com/jhoicas/company-cli/pkg/config"
	"github.com/jhoicas/company-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: cargar configuración:", err)
		os.Exit(cli.ExitError)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var (
		userRepo    repository.UserRepository
		companyRepo repository.CompanyRepository
		productRepo repository.ProductRepository
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Error().Err(err).Msg("conexión a PostgreSQL")
			fmt.Fprintln(os.Stderr, "Error: conexión a la base de datos")
			os.Exit(cli.ExitError)
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		companyRepo = postgres.NewCompanyRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	} else {
		// Sin DB configurada: store en memoria con el dataset de demostración.
		store, err := memory.NewSeededStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: preparar datos de ejemplo:", err)
			os.Exit(cli.ExitError)
		}
		userRepo = store.Users()
		companyRepo = store.Companies()
		productRepo = store.Products()
	}

	sessionFile := cfg.Session.File
	if sessionFile == "" {
		sessionFile, err = auth.DefaultFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: resolver archivo de sesión:", err)
			os.Exit(cli.ExitError)
		}
	}
	sessions := auth.NewManager(userRepo, auth.Config{
		Secret: cfg.Session.Secret,
		TTL:    time.Duration(cfg.Session.TTLMinutes) * time.Minute,
		File:   sessionFile,
	})

	deps := &cli.Deps{
		Log:       log,
		Sessions:  sessions,
		Users:     usecase.NewUserUseCase(userRepo, companyRepo),
		Companies: usecase.NewCompanyUseCase(companyRepo, userRepo),
		Inventory: inventory.NewEngine(productRepo),
	}

	root := cli.NewRootCmd(deps)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
