package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AgendaService/internal/config"
	"github.com/m04kA/SMC-AgendaService/internal/infra/auth"
	userRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/user"
	usersService "github.com/m04kA/SMC-AgendaService/internal/service/users"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

// AdminCreator создает администратора в обход HTTP
type AdminCreator interface {
	CreateAdmin(ctx context.Context, name string, email string, password string) (string, error)
}

func createAdminCmd(configPath *string) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  "Create an administrator account directly in the database. The password is taken from --password or " + adminPasswordEnv + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(adminPasswordEnv)
			}
			return runCreateAdmin(cmd.Context(), *configPath, name, email, password)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Administrador", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Password (defaults to $"+adminPasswordEnv+")")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runCreateAdmin(ctx context.Context, configPath string, name, email, password string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	svc := usersService.NewService(userRepo.NewRepository(dbmetrics.Wrap(db, nil)), tokens, log)

	return createAdmin(ctx, svc, name, email, password, os.Stdout)
}

func createAdmin(ctx context.Context, creator AdminCreator, name, email, password string, out io.Writer) error {
	if password == "" {
		return fmt.Errorf("password is required: pass --password or set %s", adminPasswordEnv)
	}

	id, err := creator.CreateAdmin(ctx, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrEmailTaken):
			return fmt.Errorf("email %s is already registered", email)
		case errors.Is(err, usersService.ErrInvalidInput):
			return fmt.Errorf("invalid admin data: %w", err)
		}
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Fprintf(out, "Admin %s created with id %s\n", email, id)
	return nil
}
