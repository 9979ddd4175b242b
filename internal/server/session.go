package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"zole/internal/bots"
	"zole/internal/engine"
)

// humanSeat is the seat driven over the websocket; the other two seats are
// bots.
const humanSeat = 0

// Session is the single-table session: one human connection plus two bot
// seats sharing one game.
type Session struct {
	mu         sync.Mutex
	id         uuid.UUID
	log        *logrus.Logger
	game       *engine.Game
	started    bool
	incentive  int
	requestIDs map[string]bool
	conn       *websocket.Conn
	botPlayers map[int]bots.Bot
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession(log *logrus.Logger) *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:         uuid.New(),
			log:        log,
			requestIDs: map[string]bool{},
			botPlayers: map[int]bots.Bot{},
		}
	})
	return sessionInst
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`
	ActionID  *int   `json:"actionId,omitempty"`
	Incentive int    `json:"incentive,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_round":
		s.startRound(msg.Incentive)
	case "player_action":
		s.applyAction(msg.RequestID, msg.ActionID)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startRound(incentive int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := time.Now().UnixNano()
	s.game = engine.NewGame(seed)
	s.game.Init()
	s.started = true
	s.incentive = incentive
	s.requestIDs = map[string]bool{}
	s.botPlayers = map[int]bots.Bot{
		1: bots.NewRandom(seed + 1),
		2: bots.NewGreedy(seed + 2),
	}
	s.log.WithFields(logrus.Fields{
		"session": s.id,
		"board":   s.game.Round.BoardID(),
	}).Info("round started")
	s.sendStateLocked(nil)
	s.botAutoPlayLocked()
}

func (s *Session) applyAction(requestID string, actionID *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "round not started")
		return
	}
	if requestID == "" {
		s.sendError("missing_request_id", "requestId required")
		return
	}
	if s.requestIDs[requestID] {
		s.sendStateLocked(nil)
		return
	}
	s.requestIDs[requestID] = true

	if actionID == nil {
		s.sendError("missing_action", "actionId required")
		return
	}
	action, err := engine.ActionFromID(*actionID)
	if err != nil {
		s.sendError("bad_action", err.Error())
		return
	}
	if s.game.CurrentPlayerID() != humanSeat {
		s.sendError("not_your_turn", "waiting for bots")
		return
	}
	if !actionIsLegal(action, s.game.LegalActions()) {
		s.sendError("illegal_action", "action not legal for current state")
		return
	}
	if _, _, err := s.game.Step(action); err != nil {
		s.sendError("apply_failed", err.Error())
		return
	}
	events := buildEvents(s.game, humanSeat, action, s.incentive)
	s.sendStateLocked(events)
	s.botAutoPlayLocked()
}

func (s *Session) botAutoPlayLocked() {
	for !s.game.IsOver() {
		player := s.game.CurrentPlayerID()
		bot, isBot := s.botPlayers[player]
		if !isBot {
			return
		}
		legal := s.game.LegalActions()
		if len(legal) == 0 {
			s.log.WithField("player", player).Error("bot has no legal actions")
			return
		}
		action := bot.ChooseAction(s.game.Round, legal)
		if _, _, err := s.game.Step(action); err != nil {
			s.log.WithError(err).WithField("player", player).Error("bot action failed")
			return
		}
		events := buildEvents(s.game, player, action, s.incentive)
		s.sendStateLocked(events)
	}
}

func actionIsLegal(a engine.Action, legal []engine.Action) bool {
	for _, l := range legal {
		if l.ID() == a.ID() {
			return true
		}
	}
	return false
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if !s.started {
		s.game = engine.NewGame(0)
		s.game.Init()
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.game, humanSeat, s.id.String(), s.incentive),
		Events: events,
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.WithError(err).Warn("write state failed")
	}
}

func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.WithError(err).Warn("write error failed")
	}
}
