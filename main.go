package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cafe-pos/config"
	"cafe-pos/console"
	"cafe-pos/db"
	"cafe-pos/receipt"
	"cafe-pos/services"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cafe")

// InitLogger configures go-logging with the given level, writing to w.
func InitLogger(level string, w io.Writer) error {
	backend := logging.NewLogBackend(w, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s} %{module} %{message}`,
	)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logOut := io.Writer(os.Stderr)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	if err := InitLogger(cfg.Log.Level, logOut); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cmd := "run"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "run":
		err = run(ctx, cfg)
	case "migrate":
		err = runMigrate(ctx, cfg)
	case "add-admin":
		err = runAddAdmin(ctx, cfg, os.Args[2:])
	default:
		err = fmt.Errorf("unknown command %q (want run, migrate or add-admin)", cmd)
	}
	if err != nil {
		log.Errorf("%s: %v", cmd, err)
		fmt.Fprintln(os.Stderr, cmd+":", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	deps, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := deps.Admins.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	deps.ShopName = cfg.Shop.Name
	deps.Printer = receipt.NoPrinter{}
	if cfg.Printer.MessageToken != "" {
		p, err := receipt.NewTelegramPrinter(cfg.Printer.MessageToken, cfg.Printer.ChatID)
		if err != nil {
			log.Warningf("bill printer disabled: %v", err)
		} else {
			deps.Printer = p
		}
	}

	log.Infof("cafe-pos started (store=%s)", cfg.DB.Store)
	err = console.New(os.Stdin, os.Stdout, deps).Run(ctx)
	log.Info("cafe-pos stopped")
	return err
}

// openStores returns the session dependencies for the configured store and a
// function releasing it.
func openStores(ctx context.Context, cfg *config.Config) (console.Deps, func(), error) {
	if cfg.DB.Store == config.StoreMemory {
		m := services.NewMemoryStore()
		return console.Deps{Catalog: m, Customers: m, Admins: m, Orders: m}, func() {}, nil
	}

	if err := db.Init(ctx, cfg.DB); err != nil {
		return console.Deps{}, nil, fmt.Errorf("db: %w", err)
	}
	if _, err := db.Migrate(ctx, db.Pool); err != nil {
		db.Close()
		return console.Deps{}, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Infof("connected to %s:%d/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.Database)

	return console.Deps{
		Catalog:   services.NewMenuStore(db.Pool),
		Customers: services.NewCustomerStore(db.Pool),
		Admins:    services.NewAdminStore(db.Pool),
		Orders:    services.NewOrderStore(db.Pool),
	}, db.Close, nil
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	if cfg.DB.Store != config.StorePostgres {
		return fmt.Errorf("migrate needs STORE=%s", config.StorePostgres)
	}
	if err := db.Init(ctx, cfg.DB); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	names, err := db.Migrate(ctx, db.Pool)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println("Migration", name, "applied.")
	}
	if err := services.NewAdminStore(db.Pool).EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	fmt.Println("Schema is up to date.")
	return nil
}

// runAddAdmin handles `cafe-pos add-admin <username> [password]`. Without a
// password one is generated and printed once.
func runAddAdmin(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: add-admin <username> [password]")
	}
	if cfg.DB.Store != config.StorePostgres {
		return fmt.Errorf("add-admin needs STORE=%s", config.StorePostgres)
	}

	username := args[0]
	var password string
	generated := false
	if len(args) == 2 {
		password = args[1]
	} else {
		p, err := services.GenerateSecurePassword()
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		password, generated = p, true
	}

	if err := db.Init(ctx, cfg.DB); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	if _, err := db.Migrate(ctx, db.Pool); err != nil {
		return err
	}

	if err := services.NewAdminStore(db.Pool).AddAdmin(ctx, username, password); err != nil {
		return err
	}
	log.Infof("admin %q added", username)
	if generated {
		fmt.Printf("Admin %s added. Password: %s\n", username, password)
	} else {
		fmt.Printf("Admin %s added.\n", username)
	}
	return nil
}
