package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/tcgsim/championship-sim/config"
	"github.com/tcgsim/championship-sim/db"
	"github.com/tcgsim/championship-sim/models"
	"github.com/tcgsim/championship-sim/repositories"
	"github.com/tcgsim/championship-sim/services"
	"github.com/tcgsim/championship-sim/storage"
)

func main() {
	var (
		mode      string
		seed      int64
		scenarios int
		debug     bool
	)
	flag.StringVar(&mode, "mode", "run", "run a single tournament (run), replay over the stored roster (rerun), or an independent-scenario batch (batch)")
	flag.Int64Var(&seed, "seed", 0, "random seed override (0 keeps SEED from the environment, or falls back to the clock)")
	flag.IntVar(&scenarios, "scenarios", 0, "scenario count override for batch mode")
	flag.BoolVar(&debug, "debug", false, "enable per-round debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if scenarios > 0 {
		cfg.Scenarios = scenarios
	}
	logger.Info("configuration loaded",
		slog.Int("field_size_min", cfg.FieldSizeMin),
		slog.Int("field_size_max", cfg.FieldSizeMax),
		slog.Float64("skill_factor", cfg.SkillFactor),
		slog.Int64("seed", cfg.Seed))

	ctx := context.Background()

	// Optional collaborators: the simulation itself never needs them.
	var (
		playerRepo repositories.PlayerRepository
		resultRepo repositories.ResultRepository
	)
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer dbConn.Close()
		if err := db.EnsureSchema(ctx, dbConn); err != nil {
			logger.Error("failed to prepare database schema", slog.Any("error", err))
			os.Exit(1)
		}
		playerRepo = repositories.NewPostgresPlayerRepository(dbConn)
		resultRepo = repositories.NewPostgresResultRepository(dbConn)
		logger.Info("database connection established")
	}

	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize report uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("report uploader initialized")
	}

	tournamentService := services.NewTournamentService(logger)
	scenarioService := services.NewScenarioService(tournamentService, logger)
	exportService := services.NewExportService(uploader, logger)

	switch mode {
	case "run":
		result, err := tournamentService.RunTournament(ctx, cfg, cfg.Seed)
		if err != nil {
			logger.Error("tournament failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("field composition",
			slog.Int("total", result.Composition.Total),
			slog.Int("below_threshold", result.Composition.BelowThreshold),
			slog.Int("above_threshold", result.Composition.AboveThreshold),
			slog.Float64("below_percent", result.Composition.BelowPercent))

		if _, err := exportService.Publish(ctx, result); err != nil {
			logger.Warn("report publish failed", slog.Any("error", err))
		}
		if resultRepo != nil {
			roster := make([]*models.Player, len(result.FinalStandings))
			for i, st := range result.FinalStandings {
				roster[i] = st.Player
			}
			if err := playerRepo.BatchCreate(ctx, roster); err != nil {
				logger.Warn("roster persistence failed", slog.Any("error", err))
			}
			if err := resultRepo.SaveResult(ctx, result); err != nil {
				logger.Warn("result persistence failed", slog.Any("error", err))
			}
			if counts, err := playerRepo.CountByZone(ctx); err == nil {
				logger.Info("roster persisted", slog.Int("zones", len(counts)))
			}
		}

	case "rerun":
		if playerRepo == nil {
			logger.Error("rerun mode needs DATABASE_URL set")
			os.Exit(1)
		}
		field, err := playerRepo.LoadAll(ctx)
		if err != nil {
			logger.Error("failed to load stored roster", slog.Any("error", err))
			os.Exit(1)
		}
		result, err := tournamentService.RunTournamentWithField(ctx, cfg, cfg.Seed, field)
		if err != nil {
			logger.Error("tournament failed", slog.Any("error", err))
			os.Exit(1)
		}
		if _, err := exportService.Publish(ctx, result); err != nil {
			logger.Warn("report publish failed", slog.Any("error", err))
		}
		if err := resultRepo.SaveResult(ctx, result); err != nil {
			logger.Warn("result persistence failed", slog.Any("error", err))
		}

	case "batch":
		dist, err := scenarioService.Run(ctx, cfg, services.SeasonRankCP(cfg.SeasonRank))
		if err != nil {
			logger.Error("scenario batch failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("season rank distribution",
			slog.Int("season_rank", cfg.SeasonRank),
			slog.Float64("min", dist.Min),
			slog.Float64("max", dist.Max),
			slog.Float64("mean", dist.Mean),
			slog.Float64("std_dev", dist.StdDev))

	default:
		logger.Error("unknown mode", slog.String("mode", mode))
		os.Exit(1)
	}
}
