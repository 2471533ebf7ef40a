package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"gigmarket/internal/config"
	"gigmarket/internal/domain"
	"gigmarket/internal/localstore"
	"gigmarket/internal/pkg/logger"
	"gigmarket/internal/remote"
)

// Seeds the local store with the back-office accounts used by the admin
// console. Passwords come from the environment so the fixtures never carry
// real credentials; each account falls back to a dev-only default.
func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	store, err := localstore.Open(cfg.LocalDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}

	accounts := []struct {
		email   string
		name    string
		role    domain.AdminRole
		passEnv string
	}{
		{"admin@gigmarket.app", "Platform Admin", domain.AdminSuper, "SEED_ADMIN_PASSWORD"},
		{"finance@gigmarket.app", "Finance Desk", domain.AdminFinance, "SEED_FINANCE_PASSWORD"},
		{"support@gigmarket.app", "Support Agent", domain.AdminSupport, "SEED_SUPPORT_PASSWORD"},
		{"moderator@gigmarket.app", "Content Moderator", domain.AdminModer, "SEED_MODERATOR_PASSWORD"},
	}

	for _, a := range accounts {
		password := os.Getenv(a.passEnv)
		if password == "" {
			password = "changeme-" + string(a.role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", a.email).Msg("hash password")
		}

		existing, err := store.AdminByEmail(ctx, a.email)
		acc := &localstore.AdminAccount{
			ID:           uuid.NewString(),
			Email:        a.email,
			Name:         a.name,
			PasswordHash: string(hash),
			Role:         string(a.role),
			CreatedAt:    time.Now(),
		}
		if err == nil && existing != nil {
			acc.ID = existing.ID
			acc.CreatedAt = existing.CreatedAt
		}
		if err := store.SaveAdmin(ctx, acc); err != nil {
			log.Fatal().Err(err).Str("email", a.email).Msg("save admin account")
		}
		log.Info().Str("email", a.email).Str("role", string(a.role)).Msg("seeded admin account")
	}

	seedCategories(ctx, cfg, log)

	log.Info().Msg("seed complete")
}

// seedCategories inserts the default category list into the remote store,
// skipping names that already exist. Failures are logged but do not abort:
// the remote project may simply not be reachable from this machine.
func seedCategories(ctx context.Context, cfg *config.Config, log zerolog.Logger) {
	rest := remote.New(remote.Config{
		BaseURL: cfg.RemoteURL,
		AnonKey: cfg.AnonKey,
		Logger:  log,
	})

	names := []string{
		"Graphics & Design",
		"Digital Marketing",
		"Writing & Translation",
		"Video & Animation",
		"Programming & Tech",
		"Music & Audio",
	}

	for _, name := range names {
		var existing domain.Category
		err := rest.From("categories").
			Select("id").
			Eq("name", name).
			Single().
			Get(ctx, &existing)
		if err == nil {
			continue
		}
		if !remote.IsNotFound(err) {
			log.Warn().Err(err).Str("category", name).Msg("category lookup failed")
			continue
		}

		if err := rest.From("categories").Insert(ctx, map[string]any{
			"id":   uuid.NewString(),
			"name": name,
		}, nil); err != nil {
			log.Warn().Err(err).Str("category", name).Msg("category insert failed")
			continue
		}
		log.Info().Str("category", name).Msg("seeded category")
	}
}
