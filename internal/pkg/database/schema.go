package database

// schema is applied on startup. Statements are idempotent so restarts
// are safe.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	ration_card_id TEXT NOT NULL UNIQUE,
	family_name TEXT NOT NULL,
	phone_number TEXT NOT NULL UNIQUE,
	address_line1 TEXT NOT NULL DEFAULT '',
	address_line2 TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	pincode TEXT NOT NULL DEFAULT '',
	language TEXT NOT NULL DEFAULT 'en',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

-- at most one is_head=1 per user is a convention, not a constraint
CREATE TABLE IF NOT EXISTS family_members (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	gender TEXT NOT NULL,
	aadhaar_number TEXT NOT NULL DEFAULT '',
	is_head INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_family_members_user ON family_members(user_id);

CREATE TABLE IF NOT EXISTS auth_sessions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	member_id TEXT REFERENCES family_members(id),
	phone_number TEXT NOT NULL,
	otp_code TEXT,
	otp_expires_at TIMESTAMP,
	is_verified INTEGER NOT NULL DEFAULT 0,
	jwt_token TEXT,
	created_at TIMESTAMP NOT NULL,
	expires_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_auth_sessions_expiry ON auth_sessions(expires_at);

CREATE TABLE IF NOT EXISTS ration_items (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	name_hindi TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	unit TEXT NOT NULL,
	price_per_unit REAL NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS shops (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	address_line1 TEXT NOT NULL,
	address_line2 TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	pincode TEXT NOT NULL,
	phone_number TEXT NOT NULL DEFAULT '',
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS member_quotas (
	id TEXT PRIMARY KEY,
	member_id TEXT NOT NULL REFERENCES family_members(id),
	item_id TEXT NOT NULL REFERENCES ration_items(id),
	monthly_limit REAL NOT NULL,
	current_used REAL NOT NULL DEFAULT 0 CHECK (current_used >= 0),
	reset_date TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	UNIQUE(member_id, item_id)
);

CREATE TABLE IF NOT EXISTS shop_stock (
	id TEXT PRIMARY KEY,
	shop_id TEXT NOT NULL REFERENCES shops(id),
	item_id TEXT NOT NULL REFERENCES ration_items(id),
	available_quantity REAL NOT NULL DEFAULT 0 CHECK (available_quantity >= 0),
	price_override REAL,
	last_updated TIMESTAMP NOT NULL,
	UNIQUE(shop_id, item_id)
);

CREATE TABLE IF NOT EXISTS purchases (
	id TEXT PRIMARY KEY,
	member_id TEXT NOT NULL REFERENCES family_members(id),
	item_id TEXT NOT NULL REFERENCES ration_items(id),
	shop_id TEXT NOT NULL REFERENCES shops(id),
	quantity REAL NOT NULL,
	total_cost REAL NOT NULL,
	payment_ref TEXT NOT NULL,
	completed_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_purchases_member ON purchases(member_id);
`
