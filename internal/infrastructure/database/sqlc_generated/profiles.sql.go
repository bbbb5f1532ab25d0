package sqlc_generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getUserProfile = `-- name: GetUserProfile :one
SELECT discord_id, ubisoft_id, created_at, updated_at FROM user_profiles
WHERE discord_id = $1
`

func (q *Queries) GetUserProfile(ctx context.Context, discordID string) (UserProfile, error) {
	row := q.db.QueryRow(ctx, getUserProfile, discordID)
	var i UserProfile
	err := row.Scan(
		&i.DiscordID,
		&i.UbisoftID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertUserProfile = `-- name: UpsertUserProfile :one
INSERT INTO user_profiles (discord_id, ubisoft_id)
VALUES ($1, $2)
ON CONFLICT (discord_id) DO UPDATE
SET ubisoft_id = EXCLUDED.ubisoft_id, updated_at = NOW()
RETURNING created_at, updated_at
`

type UpsertUserProfileParams struct {
	DiscordID string
	UbisoftID string
}

type UpsertUserProfileRow struct {
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpsertUserProfile(ctx context.Context, arg UpsertUserProfileParams) (UpsertUserProfileRow, error) {
	row := q.db.QueryRow(ctx, upsertUserProfile, arg.DiscordID, arg.UbisoftID)
	var i UpsertUserProfileRow
	err := row.Scan(&i.CreatedAt, &i.UpdatedAt)
	return i, err
}
