package main

import (
	"fmt"
	"strings"

	"github.com/avelkov/sweeper/internal/mines"
)

type GameMove uint8

const (
	Reveal GameMove = iota + 1
	Flag
	Chord
)

var ErrBadMove = fmt.Errorf("move must be one of 'reveal', 'flag', 'chord'")

func decodeGameMove(s string) (GameMove, error) {
	switch strings.ToLower(s) {
	case "reveal":
		return Reveal, nil
	case "flag":
		return Flag, nil
	case "chord":
		return Chord, nil
	}
	return 0, ErrBadMove
}

func applyGameMove(game *mines.Game, move GameMove, p mines.Point) error {
	switch move {
	case Reveal:
		return game.Reveal(p)
	case Flag:
		return game.Flag(p)
	case Chord:
		return game.Chord(p)
	}
	return ErrBadMove
}
