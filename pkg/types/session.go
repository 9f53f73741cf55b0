package types

// Session key-value field names.
const (
	SESSION_KEY_NAME      = "user_name"
	SESSION_KEY_DOB       = "user_dob"
	SESSION_KEY_LAST_OPEN = "last_open_date" // ISO date, "2006-01-02"
	SESSION_KEY_STREAK    = "current_streak"
	SESSION_KEY_JOIN_DATE = "user_join_date" // unix milli
)

type UserProfile struct {
	Name   string `json:"name"`
	DOB    string `json:"dob"`
	Streak int    `json:"streak"`
}
