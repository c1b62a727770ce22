package models

// ProgressEntry represents one logged set for a user.
// Entries are append-only: there is no update or delete path.
// Progress is the weight delta against the previous entry for the
// same (user, exercise) pair, 0 for the first one.
type ProgressEntry struct {
	ID       int64   `json:"id" db:"id"`
	UserID   int64   `json:"user_id" db:"user_id"`
	Date     string  `json:"date" db:"date"` // Format: YYYY-MM-DD
	DayLabel string  `json:"day" db:"day_label"`
	Exercise string  `json:"exercise" db:"exercise"`
	Weight   float64 `json:"weight" db:"weight"`
	Progress float64 `json:"progress" db:"progress"`
}
