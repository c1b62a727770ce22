package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/abdelrahmanemad10/GYM/internal/models"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
)

// Repository provides database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Connect opens the database and bootstraps the schema.
// dbType is "sqlite" (local single-file store) or "postgres".
func Connect(dbType, conn string) (*sqlx.DB, error) {
	if dbType == "sqlite" {
		if dir := filepath.Dir(conn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		db, err := sqlx.Connect("sqlite3", conn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if err := initSchema(db, dbType); err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := sqlx.Connect("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := initSchema(db, dbType); err != nil {
		return nil, err
	}
	return db, nil
}

// initSchema creates the two relations if they don't exist
func initSchema(db *sqlx.DB, dbType string) error {
	userPK := "BIGSERIAL PRIMARY KEY"
	entryPK := "BIGSERIAL PRIMARY KEY"
	if dbType == "sqlite" {
		userPK = "INTEGER PRIMARY KEY AUTOINCREMENT"
		entryPK = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	if _, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			weight_kg REAL,
			height_cm REAL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, userPK)); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS progress_entries (
			id %s,
			user_id BIGINT NOT NULL REFERENCES users(id),
			date TEXT NOT NULL,
			day_label TEXT NOT NULL,
			exercise TEXT NOT NULL,
			weight REAL NOT NULL,
			progress REAL NOT NULL
		)`, entryPK)); err != nil {
		return fmt.Errorf("failed to create progress_entries table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_progress_user_exercise
		ON progress_entries (user_id, exercise, date)`); err != nil {
		return fmt.Errorf("failed to create progress index: %w", err)
	}

	return nil
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, weight_kg, height_cm)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash, user.WeightKG, user.HeightCM).
		Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username
func (r *Repository) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, weight_kg, height_cm, created_at
		FROM users
		WHERE username = $1`
	err := r.db.Get(user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by its identity
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, weight_kg, height_cm, created_at
		FROM users
		WHERE id = $1`
	err := r.db.Get(user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns all registered users
func (r *Repository) ListUsers() ([]models.User, error) {
	var users []models.User
	query := `
		SELECT id, username, email, password_hash, weight_kg, height_cm, created_at
		FROM users
		ORDER BY id`
	if err := r.db.Select(&users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateProgressEntry appends a new progress entry
func (r *Repository) CreateProgressEntry(entry *models.ProgressEntry) error {
	query := `
		INSERT INTO progress_entries (user_id, date, day_label, exercise, weight, progress)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(query, entry.UserID, entry.Date, entry.DayLabel, entry.Exercise, entry.Weight, entry.Progress).
		Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to create progress entry: %w", err)
	}
	return nil
}

// LastEntry returns the most recent entry for a (user, exercise) pair,
// most recent date first, insertion order breaking date ties.
// Returns nil without error when the user never logged the exercise.
func (r *Repository) LastEntry(userID int64, exercise string) (*models.ProgressEntry, error) {
	entry := &models.ProgressEntry{}
	query := `
		SELECT id, user_id, date, day_label, exercise, weight, progress
		FROM progress_entries
		WHERE user_id = $1 AND exercise = $2
		ORDER BY date DESC, id DESC
		LIMIT 1`
	err := r.db.Get(entry, query, userID, exercise)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last entry: %w", err)
	}
	return entry, nil
}

// HistoryByUser returns all entries of a user, newest first
func (r *Repository) HistoryByUser(userID int64) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	query := `
		SELECT id, user_id, date, day_label, exercise, weight, progress
		FROM progress_entries
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`
	if err := r.db.Select(&entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return entries, nil
}

// AllEntries returns every progress entry in the store, used by backups
func (r *Repository) AllEntries() ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	query := `
		SELECT id, user_id, date, day_label, exercise, weight, progress
		FROM progress_entries
		ORDER BY id`
	if err := r.db.Select(&entries, query); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}
	return false
}
