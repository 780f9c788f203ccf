package web

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Client message types.
const (
	msgSelect  = "select"
	msgKey     = "key"
	msgPointer = "pointer"
	msgSwipe   = "swipe"
	msgRestart = "restart"
	msgStop    = "stop"
)

// Server message types.
const (
	msgGames = "games"
	msgFrame = "frame"
	msgError = "error"
)

// inMessage is any message sent by the browser. Type picks which of the
// other fields are meaningful.
type inMessage struct {
	Type string `json:"type"`

	// select
	Game string `json:"game,omitempty"`
	Mode string `json:"mode,omitempty"`

	// key
	Key  string `json:"key,omitempty"`
	Down bool   `json:"down,omitempty"`

	// pointer: "click" or "move"
	Kind string  `json:"kind,omitempty"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`

	// swipe
	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`
}

func (m inMessage) pointerKind() core.PointerKind {
	switch m.Kind {
	case "click":
		return core.PointerClick
	case "move":
		return core.PointerMove
	}
	return core.PointerNone
}

type gameInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Mode     string `json:"mode"`
	Toggle   bool   `json:"toggle"`
	Controls string `json:"controls"`
}

func listGames() []gameInfo {
	infos := registry.List()
	out := make([]gameInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, gameInfo{
			ID:       info.Kind.String(),
			Title:    info.Title,
			Mode:     info.DefaultMode.String(),
			Toggle:   info.Toggle,
			Controls: info.Controls,
		})
	}
	return out
}

type frameState struct {
	Score    int    `json:"score"`
	Score2   int    `json:"score2"`
	GameOver bool   `json:"gameOver"`
	Winner   int    `json:"winner"`
	Mode     string `json:"mode"`
}

func newFrameState(s core.GameState) frameState {
	return frameState{
		Score:    s.Score,
		Score2:   s.Score2,
		GameOver: s.GameOver,
		Winner:   int(s.Winner),
		Mode:     s.Mode.String(),
	}
}

// outMessage is any message sent to the browser.
type outMessage struct {
	Type string `json:"type"`

	Games []gameInfo `json:"games,omitempty"`

	Seq     uint64        `json:"seq,omitempty"`
	Session string        `json:"session,omitempty"`
	Game    string        `json:"game,omitempty"`
	State   *frameState   `json:"state,omitempty"`
	Events  []string      `json:"events,omitempty"`
	Ops     []core.DrawOp `json:"ops,omitempty"`

	Error string `json:"error,omitempty"`
}
