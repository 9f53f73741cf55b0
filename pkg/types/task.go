package types

type DailyTask struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	IsCompleted bool    `json:"is_completed" db:"is_completed"`
	TargetTime  *string `json:"target_time" db:"target_time"` // "HH:MM:SS"
	CreatedAt   int64   `json:"created_at" db:"created_at"`   // unix milli, date of assignment
}

const REPORT_TYPE_WEEKLY = "WEEKLY"

type ReviewReport struct {
	ID         string `json:"id" db:"id"`
	ReportType string `json:"report_type" db:"report_type"`
	Content    string `json:"content" db:"content"`
	StartDate  int64  `json:"start_date" db:"start_date"`
	EndDate    int64  `json:"end_date" db:"end_date"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`
}
