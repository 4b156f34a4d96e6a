// Package models defines the persisted account records.
package models

import (
	"strings"
	"time"
)

// ActivityLimit caps the per-user activity log. The oldest entries are
// dropped once the limit is exceeded.
const ActivityLimit = 20

// Activity is a single tracked user action. Label and Details are optional.
// Timestamp is stamped by the account service at record time (RFC 3339, UTC)
// and overrides anything the caller supplied.
type Activity struct {
	Type      string `json:"type"`
	Label     string `json:"label,omitempty"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Time parses the activity timestamp. The zero time is returned for missing
// or malformed values.
func (a Activity) Time() time.Time {
	t, err := time.Parse(time.RFC3339, a.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// User is a registered account. Email is the sole identity key and is stored
// normalized (trimmed, lowercased). Password holds whatever the configured
// scheme produced at registration; the default scheme keeps plaintext to stay
// compatible with the page this manager was ported from.
type User struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Activities []Activity `json:"activities"`
}

// FirstName returns the first whitespace-separated token of Name.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// AppendActivity appends a to the activity log, keeping only the newest
// ActivityLimit entries.
func (u *User) AppendActivity(a Activity) {
	u.Activities = append(u.Activities, a)
	if n := len(u.Activities); n > ActivityLimit {
		u.Activities = u.Activities[n-ActivityLimit:]
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
