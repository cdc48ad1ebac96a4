package mines

import (
	"fmt"
	"strings"
)

// GameParams pins down a board shape. Two games with the same params compete
// on the same highscore table, so the [GameParams.Seed] string doubles as the
// table key.
type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	return p, nil
}

// Preset pairs board params with a suggested window size for clients that
// want the classic difficulty tiers.
type Preset struct {
	Name string
	GameParams
	DisplayWidth, DisplayHeight int
}

var (
	Beginner = Preset{
		Name:          "beginner",
		GameParams:    GameParams{Width: 8, Height: 8, MineCount: 10},
		DisplayWidth:  800,
		DisplayHeight: 600,
	}
	Intermediate = Preset{
		Name:          "intermediate",
		GameParams:    GameParams{Width: 16, Height: 16, MineCount: 40},
		DisplayWidth:  1000,
		DisplayHeight: 700,
	}
	Expert = Preset{
		Name:          "expert",
		GameParams:    GameParams{Width: 30, Height: 16, MineCount: 99},
		DisplayWidth:  1200,
		DisplayHeight: 800,
	}
)

func PresetByName(name string) (Preset, bool) {
	switch strings.ToLower(name) {
	case Beginner.Name:
		return Beginner, true
	case Intermediate.Name:
		return Intermediate, true
	case Expert.Name:
		return Expert, true
	}
	return Preset{}, false
}
