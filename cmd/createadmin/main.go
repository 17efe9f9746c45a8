package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"
	"golang.org/x/term"

	"github.com/gunlinux/gunlinux.ru/config"
	"github.com/gunlinux/gunlinux.ru/internal/blog"
	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flName   = flag.String("name", "admin", "login name for the new user")
)

// createadmin provisions a user account for the admin RPC. The password
// is read from the terminal and never echoed.
func main() {
	flag.Parse()

	lg := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var cfg config.Config
	if _, err := toml.DecodeFile(*flConfig, &cfg); err != nil {
		lg.Error("read config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbc := pg.Connect(&cfg.Database)
	defer dbc.Close()
	if err := dbc.Ping(ctx); err != nil {
		lg.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	users := blog.NewFactory(dbc, lg).Users()

	existing, err := users.UserByName(ctx, *flName)
	if err != nil {
		lg.Error("lookup failed", "error", err)
		os.Exit(1)
	}
	if existing != nil {
		lg.Error("user already exists", "name", *flName)
		os.Exit(1)
	}

	password, err := readPassword()
	if err != nil {
		lg.Error("read password failed", "error", err)
		os.Exit(1)
	}

	created, err := users.Create(ctx, &domain.User{Name: *flName, Password: password})
	if err != nil {
		lg.Error("create user failed", "error", err)
		os.Exit(1)
	}

	lg.Info("user created", "id", created.ID, "name", created.Name)
}

func readPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("Repeat password: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(first) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}

	return string(first), nil
}
