package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/combat"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/metrics"
)

// Replay frame kinds
const (
	ReplayFrameRound   = "round"
	ReplayFrameSummary = "summary"
	replayWriteTimeout = 5 * time.Second
)

// ReplayFrame is one message sent over the replay socket
type ReplayFrame struct {
	Kind    string               `json:"kind"`
	Round   *domain.CombatRound  `json:"round,omitempty"`
	Summary *domain.CombatReport `json:"summary,omitempty"`
}

// ReplayHandler streams a stored combat report round by round over a websocket
type ReplayHandler struct {
	svc      economy.Service
	delay    time.Duration
	upgrader websocket.Upgrader
}

// NewReplayHandler creates a ReplayHandler pacing rounds delay apart
func NewReplayHandler(svc economy.Service, delay time.Duration) *ReplayHandler {
	return &ReplayHandler{
		svc:   svc,
		delay: delay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// HandleReplay upgrades to a websocket and replays the report
// @Summary Replay combat report
// @Description Upgrades to a websocket, sends one frame per round and a final summary frame
// @Tags arena
// @Param playerID path string true "Player ID"
// @Param reportID path string true "Report ID"
// @Success 101
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/reports/{reportID}/replay [get]
func (h *ReplayHandler) HandleReplay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	reportID, ok := pathParam(w, r, ParamReportID)
	if !ok {
		return
	}

	// Look the report up before upgrading so a miss is still a plain 404
	rep, err := h.svc.Report(r.Context(), id, reportID)
	if err != nil {
		respondServiceError(w, r, "Replay report", err)
		return
	}

	log := logger.FromContext(r.Context())
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go discardReads(conn, cancel)

	log.Info(LogMsgReplayStarted, "player_id", id, "report_id", reportID, "rounds", len(rep.Rounds))
	interrupted := func(err error) {
		metrics.ReplaysStreamed.WithLabelValues(metrics.ResultFailure).Inc()
		log.Info(LogMsgReplayInterrupt, "report_id", reportID, "error", err)
	}
	for round := range combat.Replay(ctx, rep.Rounds, h.delay) {
		if err := writeFrame(conn, ReplayFrame{Kind: ReplayFrameRound, Round: &round}); err != nil {
			interrupted(err)
			return
		}
	}
	if ctx.Err() != nil {
		interrupted(ctx.Err())
		return
	}

	summary := rep
	summary.Rounds = nil
	if err := writeFrame(conn, ReplayFrame{Kind: ReplayFrameSummary, Summary: &summary}); err != nil {
		interrupted(err)
		return
	}
	metrics.ReplaysStreamed.WithLabelValues(metrics.ResultSuccess).Inc()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(replayWriteTimeout))
	log.Info(LogMsgReplayFinished, "report_id", reportID)
}

func writeFrame(conn *websocket.Conn, frame ReplayFrame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(replayWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}

// discardReads drains client frames so close and ping control messages are
// processed, cancelling the replay once the peer goes away
func discardReads(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
