package types

const (
	TABLE_JOURNAL_ENTRY    = "liveem_journal_entry"
	TABLE_JOURNAL_BLOCK    = "liveem_journal_block"
	TABLE_JOURNAL_IMAGE    = "liveem_journal_image"
	TABLE_DAILY_TASK       = "liveem_daily_task"
	TABLE_REVIEW_REPORT    = "liveem_review_report"
	TABLE_SESSION_KV       = "liveem_session_kv"
	TABLE_WORKOUT_EXERCISE = "liveem_workout_exercise"
	TABLE_WORKOUT_SET      = "liveem_workout_set"
)
