package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/avelkov/sweeper/internal/mines"
)

// GameSession is one stored round: its immutable params, outcome flags kept
// in sync with the engine phase, and the opaque engine state blob.
type GameSession struct {
	GameSessionID int64
	PlayerID      *int64
	Width         int
	Height        int
	MineCount     int
	Won           bool
	Lost          bool
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	State         []byte
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q Queries) CreateGameSession(
	ctx context.Context, game *mines.Game, playerID *int64,
) (*GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"player_id":  playerID,
		"width":      game.Width,
		"height":     game.Height,
		"mine_count": game.MineCount,
		"won":        game.IsWon(),
		"lost":       game.IsLost(),
		"state":      state,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, width, height, mine_count, won, lost, state
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @won, @lost, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q Queries) FetchGameSession(
	ctx context.Context, gameSessionID int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionID,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	GameSessionID int64
	State         []byte
	Won           bool
	Lost          bool
	EndedAt       *time.Time
}

func (q Queries) UpdateGameSession(
	ctx context.Context, params UpdateGameSessionParams,
) error {
	_, err := q.db.Exec(
		ctx,
		`UPDATE game_session SET
			state = @state,
			won = @won,
			lost = @lost,
			ended_at = @ended_at,
			updated_at = now()
		WHERE game_session_id = @game_session_id;`,
		pgx.NamedArgs{
			"game_session_id": params.GameSessionID,
			"state":           params.State,
			"won":             params.Won,
			"lost":            params.Lost,
			"ended_at":        params.EndedAt,
		},
	)
	return err
}
