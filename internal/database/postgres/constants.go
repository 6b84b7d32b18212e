package postgres

// SQL statements shared across repositories
const (
	// SQLAdvisoryLock serializes all draw effects for one user within the
	// surrounding transaction. Advisory locks work even before the user has
	// any collection rows (unlike SELECT FOR UPDATE on a child table).
	SQLAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`

	SQLSelectLastDraw = `SELECT last_draw_at FROM users WHERE user_id = $1`

	SQLCountCollection = `SELECT COUNT(*) FROM collection_entries WHERE user_id = $1 AND tier = $2`

	SQLInsertCollection = `
		INSERT INTO collection_entries (user_id, tier, asset_index, created_at)
		VALUES ($1, $2, $3, $4)
	`

	SQLListCollection = `
		SELECT entry_id, user_id, tier, asset_index, created_at
		FROM collection_entries
		WHERE user_id = $1
		ORDER BY created_at, entry_id
	`

	SQLInsertUser = `
		INSERT INTO users (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING user_id, created_at, updated_at
	`

	SQLSelectUserByUsername = `
		SELECT user_id, username, password_hash,
		       covert_count, classified_count, restricted_count, milspec_count, industrial_count,
		       total_count, last_draw_at, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	SQLSelectUserByID = `
		SELECT user_id, username, password_hash,
		       covert_count, classified_count, restricted_count, milspec_count, industrial_count,
		       total_count, last_draw_at, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	SQLInsertSession = `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	SQLSelectSession = `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`

	SQLDeleteSession = `DELETE FROM sessions WHERE token = $1`

	SQLListAllUserStats = `
		SELECT user_id, username,
		       covert_count, classified_count, restricted_count, milspec_count, industrial_count,
		       total_count
		FROM users
		ORDER BY username ASC
	`
)

// PgErrCodeUniqueViolation is the PostgreSQL error code for unique_violation.
const PgErrCodeUniqueViolation = "23505"

// HashSeparator joins the user ID and action when deriving advisory lock keys.
const HashSeparator = ":"

// HashMaskPositiveInt64 masks the MSB so the lock key is a positive int64.
const HashMaskPositiveInt64 = uint64(0x7FFFFFFFFFFFFFFF)

// DrawAction names the draw cooldown action in advisory lock keys.
const DrawAction = "draw"
