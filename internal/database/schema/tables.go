package schema

// TableDefinitions contains all the SQL statements to create the
// database tables. Don't put REFERENCES and don't put CHECK constraints
// in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS warmup_email_service_email_credentials (
		email_id VARCHAR(255) PRIMARY KEY,
		service VARCHAR(50) NOT NULL,
		password TEXT NOT NULL,
		access_token TEXT,
		refresh_token TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS warmup_email_logs (
		id UUID PRIMARY KEY,
		warmup_id VARCHAR(255) NOT NULL,
		recipient_email VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL,
		sent_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_warmup_email_logs_warmup_id ON warmup_email_logs (warmup_id)`,
	`CREATE TABLE IF NOT EXISTS issues (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		service VARCHAR(50) NOT NULL,
		priority VARCHAR(10) NOT NULL,
		probable_cause TEXT[],
		context JSONB,
		created_at TIMESTAMP NOT NULL
	)`,
}
