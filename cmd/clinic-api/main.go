package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/v4health/clinic-api/internal/api"
	"github.com/v4health/clinic-api/internal/api/handler"
	"github.com/v4health/clinic-api/internal/core/domain"
	"github.com/v4health/clinic-api/internal/core/ports"
	"github.com/v4health/clinic-api/internal/core/service"
	"github.com/v4health/clinic-api/internal/infrastructure/config"
	"github.com/v4health/clinic-api/internal/infrastructure/db/postgres"
	redisstore "github.com/v4health/clinic-api/internal/infrastructure/db/redis"
	"github.com/v4health/clinic-api/internal/infrastructure/filestore"
	"github.com/v4health/clinic-api/internal/infrastructure/http/handlers"
	"github.com/v4health/clinic-api/pkg/logger"
)

// @title        Clinic API
// @version      1.0
// @description  Registration of clinic staff, doctors and patients plus catalog maintenance.
// @BasePath     /v4health

const shutdownTimeout = 10 * time.Second

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "clinic-api",
		Short:         "Clinic registration and catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	rootCmd.AddCommand(serveCmd(&envFile))
	rootCmd.AddCommand(migrateCmd(&envFile))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd(envFile *string) *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, err := bootstrap(ctx, *envFile)
			if err != nil {
				return err
			}
			if migrateFirst {
				if err := postgres.Migrate(cfg.Postgres.URL, log); err != nil {
					return err
				}
			}
			return runServer(ctx, cfg, log)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			return postgres.Migrate(cfg.Postgres.URL, log)
		},
	}

	cmd.AddCommand(upCmd)
	return cmd
}

func bootstrap(ctx context.Context, envFile string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx, envFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "clinic-api",
	})
	return cfg, log, nil
}

func runServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
		MinConns: cfg.Postgres.MinConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	health := []handlers.Dependency{{
		Name:    "postgres",
		Ping:    pool.Ping,
		Details: func() any { return postgres.Stats(pool) },
	}}

	// A nil interface, not a typed nil, keeps claims disabled.
	var claims ports.RegistrationClaimer
	if cfg.Redis.Addr != "" {
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		claims = redisstore.NewRegistrationClaims(client)
		health = append(health, handlers.Dependency{
			Name: "redis",
			Ping: redisstore.Pinger(client),
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("registration claims enabled")
	}

	files, imageDir, err := openFileStore(ctx, cfg)
	if err != nil {
		return err
	}

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	timeout := cfg.Postgres.QueryTimeout
	regLog := logger.Component("registration")
	catalogLog := logger.Component("catalog")

	staff := service.NewRegistrar(service.Descriptor[*domain.Staff]{
		Kind:   domain.KindStaff,
		Repo:   postgres.NewStaffRepository(pool, timeout),
		Tokens: service.NewJWTIssuer(domain.KindStaff, cfg.Tokens.StaffSecret, cfg.Tokens.TTL),
	}, hasher, claims, regLog)
	doctors := service.NewRegistrar(service.Descriptor[*domain.Doctor]{
		Kind:   domain.KindDoctor,
		Repo:   postgres.NewDoctorRepository(pool, timeout),
		Tokens: service.NewJWTIssuer(domain.KindDoctor, cfg.Tokens.DoctorSecret, cfg.Tokens.TTL),
	}, hasher, claims, regLog)
	patients := service.NewRegistrar(service.Descriptor[*domain.Patient]{
		Kind:   domain.KindPatient,
		Repo:   postgres.NewPatientRepository(pool, timeout),
		Tokens: service.NewJWTIssuer(domain.KindPatient, cfg.Tokens.PatientSecret, cfg.Tokens.TTL),
	}, hasher, claims, regLog)

	catalogRepo := postgres.NewCatalogRepository(pool, timeout)

	e := api.NewRouter(api.RouterConfig{
		Log:        logger.Component("http"),
		BasePath:   cfg.BasePath,
		Principals: handler.NewPrincipalHandler(staff, doctors, patients, files),
		Catalog: handler.NewCatalogHandler(
			service.NewCatalogService(catalogRepo, catalogLog),
			service.NewImageService(files, catalogRepo, catalogLog),
		),
		Health:       health,
		ImageDir:     imageDir,
		MaxBodyBytes: cfg.Uploads.MaxBytes,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("base_path", cfg.BasePath).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// openFileStore returns the configured upload backend and, for disk, the
// directory to serve statically.
func openFileStore(ctx context.Context, cfg *config.Config) (ports.FileStorage, string, error) {
	switch cfg.Uploads.Backend {
	case "s3":
		s3cfg := cfg.Uploads.S3
		store, err := filestore.NewS3(ctx, filestore.S3Config{
			Bucket:          s3cfg.Bucket,
			Region:          s3cfg.Region,
			Prefix:          s3cfg.Prefix,
			Endpoint:        s3cfg.Endpoint,
			AccessKeyID:     s3cfg.AccessKeyID,
			SecretAccessKey: s3cfg.SecretAccessKey,
			UsePathStyle:    s3cfg.UsePathStyle,
			MaxBytes:        cfg.Uploads.MaxBytes,
		})
		if err != nil {
			return nil, "", err
		}
		return store, "", nil
	default:
		disk, err := filestore.NewDisk(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
		if err != nil {
			return nil, "", err
		}
		return disk, disk.Dir(), nil
	}
}
