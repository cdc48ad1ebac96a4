package main

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/avelkov/sweeper/internal/mines"
	"github.com/avelkov/sweeper/internal/repository"
)

type GameSessionDTO struct {
	GameSessionID string         `json:"game_session_id"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	MineCount     int            `json:"mine_count"`
	MinesLeft     int            `json:"mines_left"`
	Phase         string         `json:"phase"`
	Won           bool           `json:"won"`
	Lost          bool           `json:"lost"`
	Grid          mines.GridView `json:"grid"`
	StartedAt     int64          `json:"started_at"`
	EndedAt       *int64         `json:"ended_at,omitempty"`
}

func newGameSessionDTO(
	session *repository.GameSession, game *mines.Game,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionID: strconv.FormatInt(session.GameSessionID, 10),
		Width:         game.Width,
		Height:        game.Height,
		MineCount:     game.MineCount,
		MinesLeft:     game.MinesLeft(),
		Phase:         game.Phase().String(),
		Won:           game.IsWon(),
		Lost:          game.IsLost(),
		Grid:          game.View(),
		StartedAt:     session.StartedAt.Time.UnixMilli(),
		EndedAt:       endedAt,
	}
}

type NewGameDTO struct {
	Width     int    `schema:"width"`
	Height    int    `schema:"height"`
	MineCount int    `schema:"mine_count"`
	Preset    string `schema:"preset"`
}

// gameParams resolves the request into engine params: a named preset wins
// over explicit dimensions.
func (dto NewGameDTO) gameParams() (mines.GameParams, bool) {
	if dto.Preset != "" {
		preset, ok := mines.PresetByName(dto.Preset)
		return preset.GameParams, ok
	}
	return mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}, dto.Width > 0 && dto.Height > 0
}

func decodeNewGame(src map[string][]string) (NewGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto NewGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func decodePosition(src map[string][]string) (Position, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var pos Position
	err := dec.Decode(&pos, src)
	return pos, err
}
