// adminctl bootstraps administrator access for the directory backend:
// it creates an admin account with a bcrypt-hashed password, or issues a
// signed token for an existing account so the API can be exercised
// without going through the login endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/auth"
	"github.com/ybotev/staffdesk/internal/directory/config"
	"github.com/ybotev/staffdesk/internal/directory/db"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var (
		configFile = flag.String("config", filepath.Join("internal", "directory", "config", "config.yaml"), "path to config file")
		create     = flag.Bool("create", false, "create an admin account")
		token      = flag.Bool("token", false, "issue a token for an existing admin")
		fullName   = flag.String("name", "", "admin full name")
		email      = flag.String("email", "", "admin email")
		phone      = flag.String("phone", "", "admin phone number")
		password   = flag.String("password", "", "admin password")
		superAdmin = flag.Bool("super", false, "create with the super-admin role")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := db.NewRepository(&db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	switch {
	case *create:
		if *fullName == "" || *email == "" || *password == "" {
			log.Fatal("-create requires -name, -email and -password")
		}
		if err := createAdmin(ctx, repo, *fullName, *email, *phone, *password, *superAdmin); err != nil {
			log.Fatalf("failed to create admin: %v", err)
		}
	case *token:
		if *email == "" {
			log.Fatal("-token requires -email")
		}
		if err := issueToken(ctx, repo, *email, cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Hour); err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func createAdmin(ctx context.Context, repo *db.Repository, fullName, email, phone, password string, superAdmin bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleAdmin
	if superAdmin {
		role = models.RoleSuperAdmin
	}
	admin := &models.Admin{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		return err
	}

	fmt.Printf("created admin %s (%s)\n", admin.ID, admin.Email)
	return nil
}

func issueToken(ctx context.Context, repo *db.Repository, email, secret string, ttl time.Duration) error {
	admin, err := repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken(admin.ID.String(), secret, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
