// Package visitors records privacy-conscious page views: client addresses are
// salted and hashed before storage, Do Not Track is honoured, and old rows
// are purged on a schedule.
package visitors

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary counts visits over a few fixed windows.
type Summary struct {
	Total    int64 `json:"total_visitors"`
	Unique   int64 `json:"unique_visitors"`
	Today    int64 `json:"visitors_today"`
	ThisWeek int64 `json:"visitors_this_week"`
}

type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Repository persists visits.
type Repository interface {
	Record(ctx context.Context, v Visit) error
	Summary(ctx context.Context, dayStart, weekStart time.Time) (Summary, error)
	TopPaths(ctx context.Context, limit int) ([]PathCount, error)
	Recent(ctx context.Context, limit int) ([]Visit, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Hasher turns client addresses into short salted digests. The same address
// always maps to the same digest for the lifetime of the salt.
type Hasher struct {
	salt string
}

// NewHasher uses salt, or a random one when salt is empty.
func NewHasher(salt string) (*Hasher, error) {
	if salt == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		salt = hex.EncodeToString(buf)
	}
	return &Hasher{salt: salt}, nil
}

func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}
