// Command cli holds maintenance tasks run against the storefront database.
//
//	cli create-user -name Admin -email admin@example.com -password secret -admin
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/storefront/internal/config"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/password"
	"github.com/dtroode/storefront/internal/repository/postgres"
	"github.com/dtroode/storefront/internal/service"
)

// UserCreator is the part of the user service the CLI needs.
type UserCreator interface {
	Create(ctx context.Context, in model.UserInput) (model.User, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "create-user":
		if err := runCreateUser(ctx, os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: cli create-user -name NAME -email EMAIL -password PASSWORD [-admin]")
}

func runCreateUser(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.NewDatabaseConfig()
	if err != nil {
		return err
	}

	db, err := postgres.NewConnection(ctx, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	users := service.NewUser(postgres.NewUserRepository(db), password.NewBcrypt(password.DefaultCost), logger.New(0))
	return createUser(ctx, users, args, out)
}

func createUser(ctx context.Context, users UserCreator, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(out)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address used to sign in")
	pass := fs.String("password", "", "password, at least 6 characters")
	admin := fs.Bool("admin", false, "grant the admin role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role := model.RoleUser.String()
	if *admin {
		role = model.RoleAdmin.String()
	}

	user, err := users.Create(ctx, model.UserInput{
		Name:     *name,
		Email:    *email,
		Password: *pass,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(out, "created %s %s (%s)\n", user.Role, user.Email, user.ID)
	return nil
}
