package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/seunghun-dev/go-board-api/config"
)

// Seeds a demo user and a couple of posts for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "Password1"
	name := "demoUser"

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (name, age, hobby, email, password, login, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $4, now())
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING user_id
	`, name, 30, "READING", email, password).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s name=%s password=%s\n", userID, email, name, password)

	titles := []string{"first post", "second post"}
	for _, title := range titles {
		var postID int64
		err = db.QueryRow(`
			INSERT INTO posts (title, content, user_id, created_by, created_at)
			VALUES ($1, $2, $3, $4, now())
			RETURNING post_id
		`, title, "seeded content for "+title, userID, name).Scan(&postID)
		if err != nil {
			log.Fatalf("failed to seed post: %v", err)
		}
		fmt.Printf("seeded post: id=%d title=%q\n", postID, title)
	}
}
