package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/avelkov/sweeper/internal/mines"
)

var commandNargs = map[string]int{
	"g": 0, // fetch state
	"r": 2, // reveal x y
	"f": 2, // flag x y
	"c": 2, // chord x y
	"q": 0, // forfeit
}

func parseXY(args []string) (p mines.Point, err error) {
	if p.X, err = strconv.Atoi(args[0]); err != nil {
		return p, fmt.Errorf("first argument must be an int")
	}
	if p.Y, err = strconv.Atoi(args[1]); err != nil {
		return p, fmt.Errorf("second argument must be an int")
	}
	return p, nil
}

func runCommand(game *mines.Game, command string) error {
	parts := strings.Split(command, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("command %q takes %d arguments", parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return nil
	case "q":
		game.Forfeit()
		return nil
	}

	p, err := parseXY(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "r":
		err = game.Reveal(p)
	case "f":
		err = game.Flag(p)
	case "c":
		err = game.Chord(p)
	}
	return err
}

// handleConnectWS speaks a line-oriented move protocol over a websocket: each
// text message carries newline-separated commands, and every message is
// answered with the full session state.
func (app *application) handleConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.log.WithError(err).Warn("abnormal ws break")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		for _, command := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			if err := runCommand(game, command); err != nil {
				app.log.WithError(err).Debug("rejected ws command")
				if err := c.WriteJSON(map[string]string{"error": err.Error()}); err != nil {
					return
				}
				continue
			}
			if game.IsWon() || game.IsLost() {
				break
			}
		}

		// past the upgrade the ResponseWriter is hijacked; report persistence
		// failures over the socket
		if err := app.persistSession(r.Context(), session, game); err != nil {
			app.log.WithError(err).Error("unable to save ws session")
			_ = c.WriteJSON(map[string]string{"error": "unable to save session"})
			return
		}

		if err := c.WriteJSON(newGameSessionDTO(session, game)); err != nil {
			app.log.WithError(err).Error("unable to write json")
			break
		}
	}
}
