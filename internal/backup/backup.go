package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/abdelrahmanemad10/GYM/internal/models"
	"github.com/abdelrahmanemad10/GYM/internal/repository"
	"github.com/abdelrahmanemad10/GYM/internal/utils"
)

// Snapshot is a whole-store duplication of both relations
type Snapshot struct {
	TakenAt time.Time              `json:"taken_at"`
	Users   []models.User          `json:"users"`
	Entries []models.ProgressEntry `json:"entries"`
}

// Runner dumps the whole store to timestamped JSON files on a schedule.
// Each dump gets an HMAC signature written next to it so a restore can
// detect tampered or truncated files.
type Runner struct {
	repo   *repository.Repository
	log    *logrus.Logger
	dir    string
	secret string
	cron   *cron.Cron
}

// NewRunner initializes a new backup runner
func NewRunner(repo *repository.Repository, log *logrus.Logger, dir, secret string) *Runner {
	return &Runner{
		repo:   repo,
		log:    log,
		dir:    dir,
		secret: secret,
		cron:   cron.New(),
	}
}

// Start schedules periodic backups with the given cron spec
func (r *Runner) Start(spec string) error {
	if _, err := r.cron.AddFunc(spec, func() {
		if _, err := r.Run(); err != nil {
			r.log.Errorf("Backup failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule backup: %w", err)
	}
	r.cron.Start()
	return nil
}

// Stop terminates the backup schedule
func (r *Runner) Stop() {
	r.cron.Stop()
}

// Run takes one snapshot and returns the path of the written file
func (r *Runner) Run() (string, error) {
	users, err := r.repo.ListUsers()
	if err != nil {
		return "", err
	}
	entries, err := r.repo.AllEntries()
	if err != nil {
		return "", err
	}

	snapshot := Snapshot{
		TakenAt: time.Now().UTC(),
		Users:   users,
		Entries: entries,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("gym-%s.json", snapshot.TakenAt.Format("20060102-150405"))
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	sig := utils.GenerateHMAC(data, r.secret)
	if err := os.WriteFile(path+".sig", []byte(sig), 0644); err != nil {
		return "", fmt.Errorf("failed to write backup signature: %w", err)
	}

	r.log.Infof("Backup written: %s (%d users, %d entries)", path, len(users), len(entries))
	return path, nil
}

// Load reads a snapshot back, verifying its signature first
func (r *Runner) Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	sig, err := os.ReadFile(path + ".sig")
	if err != nil {
		return nil, fmt.Errorf("failed to read backup signature: %w", err)
	}
	if !utils.VerifyHMAC(data, string(sig), r.secret) {
		return nil, fmt.Errorf("backup signature mismatch: %s", path)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}
