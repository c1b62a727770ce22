package models

// User represents a registered user in the system
type User struct {
	ID           int64    `json:"id" db:"id"`
	Username     string   `json:"username" db:"username"`
	Email        string   `json:"email" db:"email"`
	PasswordHash string   `json:"-" db:"password_hash"` // Not serialized
	WeightKG     *float64 `json:"weight_kg,omitempty" db:"weight_kg"`
	HeightCM     *float64 `json:"height_cm,omitempty" db:"height_cm"`
	CreatedAt    string   `json:"created_at" db:"created_at"`
}
