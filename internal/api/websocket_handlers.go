package api

import (
	"net/http"

	"assessment-portal/internal/auth"
	"assessment-portal/internal/websocket"

	"github.com/rs/zerolog/hlog"
)

// @Summary      Live session feed
// @Description  Upgrades to a websocket that receives every ledger change as {"event_type", "payload"}. Browsers cannot set headers on websocket requests, so the token travels in the query string.
// @Tags         admin
// @Param        token  query  string  true  "Admin JWT"
// @Success      101
// @Failure      401  {object}  ErrorResponse
// @Router       /admin/ws [get]
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		logger.Warn().Msg("ws connection attempt without token")
		respondError(w, http.StatusUnauthorized, "Token required")
		return
	}

	claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
	if err != nil || claims.Role != auth.RoleAdmin {
		logger.Warn().Err(err).Msg("ws connection attempt with invalid token")
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.AdminID)
	if !s.wsHub.Attach(client) {
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
