package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/championship-progression/internal/config"
	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/domain/progression"
	"github.com/riskibarqy/championship-progression/internal/domain/team"
	repocache "github.com/riskibarqy/championship-progression/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/championship-progression/internal/interfaces/httpapi"
	"github.com/riskibarqy/championship-progression/internal/platform/cache"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/riskibarqy/championship-progression/internal/usecase"
)

type stores struct {
	championships championship.Repository
	matches       match.Repository
	teams         team.Repository
	progression   progression.Store
	close         func() error
}

// NewHTTPServer wires the store selected by cfg.StoreDriver into the HTTP
// API. The returned cleanup closes the database pool, if any.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := newStores(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	progressionSvc := usecase.NewProgressionService(st.matches, st.progression, idgen.NewRandomGenerator(), logger)
	handler := httpapi.NewHandler(
		usecase.NewChampionshipService(st.championships, st.matches),
		usecase.NewStandingService(st.championships, st.matches, st.teams),
		usecase.NewMatchService(st.championships, st.matches, progressionSvc, logger),
		progressionSvc,
		usecase.NewReconcileService(st.championships, st.matches, progressionSvc, cfg.ReconcileWorkers, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, st.close, nil
}

func newStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		if cfg.SeedDemoData {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return stores{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		var teams team.Repository = postgres.NewTeamRepository(db)
		if cfg.TeamCacheTTL > 0 {
			teams = repocache.NewTeamRepository(teams, cache.NewStore(cfg.TeamCacheTTL))
		}
		logger.Info("store ready", "driver", cfg.StoreDriver, "seeded", cfg.SeedDemoData, "team_cache_ttl", cfg.TeamCacheTTL.String())
		return stores{
			championships: postgres.NewChampionshipRepository(db),
			matches:       postgres.NewMatchRepository(db),
			teams:         teams,
			progression:   postgres.NewProgressionStore(db),
			close:         db.Close,
		}, nil

	case config.StoreDriverMemory:
		seed := memory.Seed{}
		if cfg.SeedDemoData {
			seed = memory.DemoSeed()
		}
		championshipRepo := memory.NewChampionshipRepository(seed.Championships)
		matchRepo := memory.NewMatchRepository(seed.Matches, seed.PlayerTeams)
		logger.Info("store ready", "driver", cfg.StoreDriver, "seeded", cfg.SeedDemoData)
		return stores{
			championships: championshipRepo,
			matches:       matchRepo,
			teams:         memory.NewTeamRepository(seed.Teams),
			progression:   memory.NewProgressionStore(championshipRepo, matchRepo),
			close:         func() error { return nil },
		}, nil

	default:
		return stores{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
