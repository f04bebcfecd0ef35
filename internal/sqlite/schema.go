package sqlite

// Schema DDL. Ordinal preserves server-side view order; filters and sorts
// keep insertion order through seq.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS views (
    view_id TEXT PRIMARY KEY,
    table_id TEXT NOT NULL,
    type TEXT NOT NULL,
    name TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    filters_disabled INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS view_filters (
    filter_id TEXT PRIMARY KEY,
    view_id TEXT NOT NULL,
    field_id TEXT NOT NULL,
    type TEXT NOT NULL,
    value TEXT NOT NULL DEFAULT '',
    seq INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (view_id) REFERENCES views(view_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS view_sorts (
    sort_id TEXT PRIMARY KEY,
    view_id TEXT NOT NULL,
    field_id TEXT NOT NULL,
    sort_order TEXT NOT NULL,
    seq INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (view_id) REFERENCES views(view_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS fields (
    field_id TEXT PRIMARY KEY,
    table_id TEXT NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`
