package web

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	// idlePeriod paces the ticker while no game is selected.
	idlePeriod = 100 * time.Millisecond
)

var errDisconnected = errors.New("web: client disconnected")

// conn is one browser connection. It owns a session host; the read loop
// feeds input into it and the tick loop advances it and ships frames.
type conn struct {
	ws     *websocket.Conn
	host   *session.Host
	store  *storage.Store
	logger *log.Logger

	writeMu sync.Mutex

	frameMu sync.Mutex
	ops     []core.DrawOp
	events  []string
	dirty   bool
	seq     uint64
}

func newConn(ws *websocket.Conn, seed int64, store *storage.Store, logger *log.Logger) *conn {
	c := &conn{
		ws:     ws,
		store:  store,
		logger: logger,
	}
	c.host = session.NewHost(session.Options{
		Seed:   seed,
		Canvas: core.NewDrawList(core.CanvasWidth, core.CanvasHeight),
		Logger: logger,
		Hooks: session.Hooks{
			OnFrame:    c.onFrame,
			OnEvents:   c.onEvents,
			OnGameOver: c.onGameOver,
		},
	})
	return c
}

// run serves the connection until the client leaves or ctx is cancelled.
func (c *conn) run(ctx context.Context) error {
	defer c.host.Stop()

	c.ws.SetReadLimit(maxMessageSize)
	if err := c.write(outMessage{Type: msgGames, Games: listGames()}); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.readLoop(ctx) })
	g.Go(func() error { return c.tickLoop(ctx) })
	g.Go(func() error {
		<-ctx.Done()
		c.ws.Close()
		return nil
	})

	err := g.Wait()
	if errors.Is(err, errDisconnected) {
		return nil
	}
	return err
}

func (c *conn) readLoop(ctx context.Context) error {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				c.logger.Debug("read failed", "error", err)
			}
			return errDisconnected
		}

		var msg inMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if werr := c.sendError("malformed message"); werr != nil {
				return werr
			}
			continue
		}
		if err := c.handle(msg); err != nil {
			if werr := c.sendError(err.Error()); werr != nil {
				return werr
			}
		}
	}
}

// handle applies one client message to the host. The returned error is
// reported to the client and does not end the connection.
func (c *conn) handle(msg inMessage) error {
	switch msg.Type {
	case msgSelect:
		kind, err := registry.ParseKind(msg.Game)
		if err != nil {
			return err
		}
		mode, err := core.ParseMode(msg.Mode)
		if err != nil {
			return err
		}
		s, err := c.host.Select(kind, mode, time.Now())
		if err != nil {
			return err
		}
		c.logger.Info("game selected", "game", kind, "mode", s.Mode(), "session", s.ID())

	case msgKey:
		if msg.Down {
			c.host.Press(msg.Key)
		} else {
			c.host.Release(msg.Key)
		}

	case msgPointer:
		if kind := msg.pointerKind(); kind != core.PointerNone {
			c.host.Point(kind, msg.X, msg.Y)
		}

	case msgSwipe:
		c.host.Swipe(msg.DX, msg.DY)

	case msgRestart:
		return c.host.Restart(time.Now())

	case msgStop:
		c.host.Stop()
		c.frameMu.Lock()
		c.dirty = false
		c.events = c.events[:0]
		c.frameMu.Unlock()

	default:
		return errors.New("unknown message type " + msg.Type)
	}
	return nil
}

// tickLoop advances the running game once per period and ships each new
// frame. Every timer fire is exactly one Tick.
func (c *conn) tickLoop(ctx context.Context) error {
	timer := time.NewTimer(idlePeriod)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-timer.C:
			c.host.Tick(now)
			if err := c.flush(); err != nil {
				return err
			}
			timer.Reset(c.period())
		}
	}
}

func (c *conn) period() time.Duration {
	if s := c.host.Current(); s != nil {
		return s.Period()
	}
	return idlePeriod
}

// flush sends the last drawn frame if it has not been sent yet.
func (c *conn) flush() error {
	s := c.host.Current()
	if s == nil {
		return nil
	}

	// Session accessors take the session lock, which OnFrame holds while
	// waiting for frameMu; read them before taking frameMu.
	state := newFrameState(s.State())
	msg := outMessage{
		Type:    msgFrame,
		Session: s.ID(),
		Game:    s.Kind().String(),
		State:   &state,
	}

	c.frameMu.Lock()
	if !c.dirty {
		c.frameMu.Unlock()
		return nil
	}
	c.seq++
	msg.Seq = c.seq
	msg.Ops = append([]core.DrawOp(nil), c.ops...)
	msg.Events = append([]string(nil), c.events...)
	c.dirty = false
	c.events = c.events[:0]
	c.frameMu.Unlock()

	return c.write(msg)
}

// onFrame runs under the session lock, so it only copies the ops.
func (c *conn) onFrame(_ *session.Session, canvas core.Canvas) {
	dl, ok := canvas.(*core.DrawList)
	if !ok {
		return
	}
	c.frameMu.Lock()
	c.ops = append(c.ops[:0], dl.Ops...)
	c.dirty = true
	c.frameMu.Unlock()
}

func (c *conn) onEvents(_ registry.Kind, events []core.Event) {
	c.frameMu.Lock()
	for _, e := range events {
		c.events = append(c.events, e.String())
	}
	c.frameMu.Unlock()
}

func (c *conn) onGameOver(r session.Result) {
	if c.store == nil {
		return
	}
	if _, err := c.store.Record(r); err != nil {
		c.logger.Warn("could not save score", "game", r.Kind, "error", err)
	}
}

func (c *conn) sendError(text string) error {
	return c.write(outMessage{Type: msgError, Error: text})
}

func (c *conn) write(msg outMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(msg)
}
