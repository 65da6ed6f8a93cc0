package database

// schema creates all tables. Embedded in the binary for portability.
const schema = `
-- Table: daily_verses
-- One row per (date, slot, lang) composite key, stored as id "{date}_{slot}_{lang}".
-- Append-only per key; created_at is assigned by the server on write.
CREATE TABLE IF NOT EXISTS daily_verses (
    id TEXT PRIMARY KEY,
    reference TEXT NOT NULL,
    verse_text TEXT NOT NULL,
    explanation TEXT NOT NULL,
    image_url TEXT NOT NULL,
    lang TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- Table: device_tokens
-- Push registrations keyed by the raw FCM token.
CREATE TABLE IF NOT EXISTS device_tokens (
    token TEXT PRIMARY KEY,
    lang TEXT NOT NULL,
    frequency INT NOT NULL CHECK (frequency IN (1, 3)),
    timezone TEXT NOT NULL DEFAULT 'America/Santiago',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
