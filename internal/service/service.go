package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdelrahmanemad10/GYM/internal/config"
	"github.com/abdelrahmanemad10/GYM/internal/models"
	"github.com/abdelrahmanemad10/GYM/internal/repository"
)

var (
	ErrDuplicateUsername  = repository.ErrDuplicateUsername
	ErrInvalidWeight      = errors.New("weight must not be negative")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DietGenerator produces a free-form diet plan text for a user profile
type DietGenerator interface {
	DietPlan(user *models.User) (string, error)
}

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	diet   DietGenerator

	// serializes writes per user so the delta-base read is deterministic
	mu        sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, diet DietGenerator) *Service {
	return &Service{
		repo:      repo,
		log:       log,
		config:    cfg,
		diet:      diet,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// Register creates a new user with hashed password.
// Returns ErrDuplicateUsername when the username is already taken.
func (s *Service) Register(username, email, password string, weightKG, heightCM *float64) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		WeightKG:     weightKG,
		HeightCM:     heightCM,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login authenticates a user and returns a JWT token carrying its identity
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return tokenString, nil
}

// LogSet records one weight observation for a user and exercise.
// The progress delta is computed against the most recent prior entry
// for the same (user, exercise) pair, date descending with insertion
// order breaking ties, and is 0 when no prior entry exists.
func (s *Service) LogSet(userID int64, date, dayLabel, exercise string, weight float64) (*models.ProgressEntry, error) {
	if weight < 0 {
		return nil, ErrInvalidWeight
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	prior, err := s.repo.LastEntry(userID, exercise)
	if err != nil {
		return nil, err
	}

	var progress float64
	if prior != nil {
		progress = weight - prior.Weight
	}

	entry := &models.ProgressEntry{
		UserID:   userID,
		Date:     date,
		DayLabel: dayLabel,
		Exercise: exercise,
		Weight:   weight,
		Progress: progress,
	}

	if err := s.repo.CreateProgressEntry(entry); err != nil {
		return nil, err
	}

	s.log.Infof("Set logged for user %d: %s %.1fkg (%+.1f)", userID, exercise, weight, progress)
	return entry, nil
}

// LogBatch applies LogSet once per paired (exercise, weight) element.
// The shorter of the two slices determines how many pairs are processed;
// no error is raised for a length mismatch. Entries created before a
// failing pair remain recorded.
func (s *Service) LogBatch(userID int64, date, dayLabel string, exercises []string, weights []float64) ([]models.ProgressEntry, error) {
	n := len(exercises)
	if len(weights) < n {
		n = len(weights)
	}

	entries := make([]models.ProgressEntry, 0, n)
	for i := 0; i < n; i++ {
		entry, err := s.LogSet(userID, date, dayLabel, exercises[i], weights[i])
		if err != nil {
			return entries, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// History returns all progress entries of a user, newest first.
// An empty history is an empty slice, not an error.
func (s *Service) History(userID int64) ([]models.ProgressEntry, error) {
	entries, err := s.repo.HistoryByUser(userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ProgressEntry{}
	}
	return entries, nil
}

// GetUser returns the user record for an identity
func (s *Service) GetUser(userID int64) (*models.User, error) {
	return s.repo.FindUserByID(userID)
}

// GenerateDietPlan obtains a free-form diet plan text for the user's profile
func (s *Service) GenerateDietPlan(userID int64) (string, error) {
	if s.diet == nil {
		return "", errors.New("diet plan generation is not configured")
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return "", err
	}

	plan, err := s.diet.DietPlan(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate diet plan: %w", err)
	}

	s.log.Infof("Diet plan generated for user %d", userID)
	return plan, nil
}

func (s *Service) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}
