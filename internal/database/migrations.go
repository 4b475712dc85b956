package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		phone VARCHAR(64),
		youtube_handle VARCHAR(255),
		picked BOOLEAN NOT NULL DEFAULT false,
		picked_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	// picked and picked_at move together
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'users_picked_at_consistent'
		) THEN
			ALTER TABLE users ADD CONSTRAINT users_picked_at_consistent
				CHECK ((picked AND picked_at IS NOT NULL) OR (NOT picked AND picked_at IS NULL));
		END IF;
	END $$`,

	`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_users_unpicked_eligible ON users(id)
		WHERE picked = false AND youtube_handle IS NOT NULL AND length(youtube_handle) > 0`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
