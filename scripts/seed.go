//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/ridwansameer/simple-todo-api/internal/auth"
	"github.com/ridwansameer/simple-todo-api/internal/database"
	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
	"github.com/ridwansameer/simple-todo-api/pkg/config"
	"github.com/ridwansameer/simple-todo-api/pkg/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	st := store.NewStore(db)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authService := auth.NewService(st, jwtService)

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	name := os.Getenv("SEED_NAME")

	if email == "" {
		email = "demo@example.com"
	}
	if password == "" {
		password = "demo1234"
	}
	if name == "" {
		name = "Demo User"
	}

	ctx := context.Background()

	resp, err := authService.Register(ctx, auth.RegisterInput{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		log.Fatalf("failed to create seed user: %v", err)
	}

	org, err := st.CreateOrganisation(ctx, "Demo Organisation", resp.User.ID)
	if err != nil {
		log.Fatalf("failed to create seed organisation: %v", err)
	}

	project := models.Project{
		Name:           "Demo Project",
		Description:    "Seeded project",
		OrganisationID: org.ID,
	}
	if err := st.CreateProject(ctx, &project); err != nil {
		log.Fatalf("failed to create seed project: %v", err)
	}

	todo := models.Todo{
		Title:       "Try out the API",
		Description: "Log in with the seeded account and poke around",
		ProjectID:   project.ID,
		Status:      models.StatusTodo,
		CreatedBy:   &resp.User.ID,
	}
	if err := st.CreateTodo(ctx, &todo); err != nil {
		log.Fatalf("failed to create seed todo: %v", err)
	}

	fmt.Printf("seeded user %s (password %q) with organisation %d\n", email, password, org.ID)
}
