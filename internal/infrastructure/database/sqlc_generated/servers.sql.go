package sqlc_generated

import (
	"context"
)

const getServerByDiscordID = `-- name: GetServerByDiscordID :one
SELECT id, name, discord_id, td2_enabled, created_at FROM servers
WHERE discord_id = $1
`

func (q *Queries) GetServerByDiscordID(ctx context.Context, discordID string) (Server, error) {
	row := q.db.QueryRow(ctx, getServerByDiscordID, discordID)
	var i Server
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DiscordID,
		&i.Td2Enabled,
		&i.CreatedAt,
	)
	return i, err
}
