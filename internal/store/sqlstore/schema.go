package sqlstore

import "context"

// schemaV1 is created on first open. Types follow sqlite affinity rules;
// timestamps are unix milliseconds.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS liveem_journal_entry (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS liveem_journal_block (
    id TEXT PRIMARY KEY,
    entry_id TEXT NOT NULL REFERENCES liveem_journal_entry(id) ON DELETE CASCADE,
    block_type TEXT NOT NULL,
    content TEXT,
    sort_order INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_liveem_journal_block_entry ON liveem_journal_block(entry_id, sort_order);

CREATE TABLE IF NOT EXISTS liveem_journal_image (
    id TEXT PRIMARY KEY,
    block_id TEXT NOT NULL REFERENCES liveem_journal_block(id) ON DELETE CASCADE,
    image_data BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_liveem_journal_image_block ON liveem_journal_image(block_id);

CREATE TABLE IF NOT EXISTS liveem_daily_task (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    is_completed BOOLEAN NOT NULL DEFAULT FALSE,
    target_time TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS liveem_review_report (
    id TEXT PRIMARY KEY,
    report_type TEXT NOT NULL,
    content TEXT NOT NULL,
    start_date INTEGER NOT NULL,
    end_date INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS liveem_session_kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS liveem_workout_exercise (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    muscles TEXT NOT NULL DEFAULT '',
    recommended TEXT NOT NULL DEFAULT '',
    is_completed BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at INTEGER,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS liveem_workout_set (
    id TEXT PRIMARY KEY,
    exercise_id TEXT NOT NULL REFERENCES liveem_workout_exercise(id) ON DELETE CASCADE,
    weight TEXT NOT NULL DEFAULT '',
    reps TEXT NOT NULL DEFAULT '',
    sort_order INTEGER NOT NULL
);
`

func (p *Provider) Install() error {
	_, err := p.GetMaster(context.Background()).Exec(schemaV1)
	return err
}
