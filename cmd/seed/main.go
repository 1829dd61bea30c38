package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"propwrite/internal/config"
	"propwrite/internal/db"
	"propwrite/internal/model"
	"propwrite/internal/repository"
)

// SeedUserData describes one demo user to provision.
type SeedUserData struct {
	Name     string
	Email    string
	Password string
}

var demoUsers = []SeedUserData{
	{Name: "Ada Wright", Email: "ada@example.com", Password: "password123"},
	{Name: "Tom Okafor", Email: "tom@example.com", Password: "password123"},
	{Name: "Mei Lin", Email: "mei@example.com", Password: "password123"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Profile{}, &model.Proposal{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding demo users into database...")
	created, skipped, err := seedUsers(ctx, userRepo, profileRepo, demoUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}

// seedUsers creates demo users with zeroed quota profiles, skipping emails
// that already exist.
func seedUsers(ctx context.Context, users repository.UserRepository, profiles repository.ProfileRepository, seeds []SeedUserData) (created int, skipped int, err error) {
	for _, seed := range seeds {
		existing, err := users.FindByEmail(ctx, seed.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, err
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", seed.Email)
			skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, skipped, err
		}

		user := &model.User{
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: string(hash),
		}
		if err := users.Create(ctx, user); err != nil {
			return created, skipped, err
		}
		if err := profiles.Create(ctx, &model.Profile{UserID: user.ID}); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
