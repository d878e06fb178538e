package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Snapshots: named item loadouts, stored as both the YAML document for
-- inspection and the binary blob for lossless restore.
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id SERIAL PRIMARY KEY,
    snapshot_name VARCHAR(100) UNIQUE NOT NULL,
    yaml_doc TEXT NOT NULL,
    blob BYTEA NOT NULL,
    item_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_snapshots_updated_at ON snapshots (updated_at DESC);
`
