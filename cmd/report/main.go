// Command report prints the employee listing of one department to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/config"
	"github.com/orgdesk/org-service/internal/observability"
	"github.com/orgdesk/org-service/internal/persistence"
	"github.com/orgdesk/org-service/internal/repository"
	"github.com/orgdesk/org-service/internal/service"
)

func main() {
	departamentoID := flag.Int64("departamento", 0, "department id to report on")
	flag.Parse()
	if *departamentoID <= 0 {
		fmt.Fprintln(os.Stderr, "usage: report -departamento <id>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	err = persistence.WithPostgres(ctx, cfg.Postgres, logger, func(pg *persistence.Postgres) error {
		store := service.NewDepartamentoStore(service.DepartamentoDependencies{
			UnitOfWork: repository.NewUnitOfWork(pg.PoolHandle()),
			Logger:     logger,
		})
		return store.WriteEmpleadosReport(ctx, os.Stdout, *departamentoID)
	})
	if err != nil {
		logger.Error("report failed", zap.Int64("departamento_id", *departamentoID), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
