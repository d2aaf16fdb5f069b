// Command resetadmin securely resets (or creates) an admin password.
// The password is bcrypt-hashed before it is stored.
//
// Usage:
//
//	resetadmin <username> <new-password>
package main

import (
	"fmt"
	"os"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/database"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: resetadmin <username> <new-password>")
		os.Exit(2)
	}
	username, newPassword := os.Args[1], os.Args[2]

	if len(newPassword) < minPasswordLength {
		fmt.Fprintf(os.Stderr, "error: password must be at least %d characters\n", minPasswordLength)
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: load config: %v\n", err)
		os.Exit(1)
	}

	if err := database.Connect(&cfg.Database); err != nil {
		fmt.Fprintf(os.Stderr, "error: connect database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	userRepo := repositories.NewUserRepository(database.GetDB())

	if err := resetPassword(userRepo, username, newPassword); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resetPassword(userRepo repositories.UserRepository, username, newPassword string) error {
	user, err := userRepo.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	if user == nil {
		fmt.Fprintf(os.Stderr, "user %q not found\n", username)
		listUsers(userRepo)
		return fmt.Errorf("user %q not found", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := userRepo.Update(user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	fmt.Printf("Password for %q updated successfully\n", username)
	return nil
}

func listUsers(userRepo repositories.UserRepository) {
	users, err := userRepo.GetAll()
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, "available users:")
	for _, u := range users {
		fmt.Fprintf(os.Stderr, "  - %s (created: %s)\n", u.Username, u.CreatedAt.Format("2006-01-02"))
	}
}
