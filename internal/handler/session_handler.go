package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"movierec/internal/catalog"
	"movierec/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type SessionHandler struct {
	mgr       *session.Manager
	cat       *catalog.Catalog
	jwtSecret []byte
	gridSize  int
}

func NewSessionHandler(mgr *session.Manager, cat *catalog.Catalog, jwtSecret string, gridSize int) *SessionHandler {
	return &SessionHandler{
		mgr:       mgr,
		cat:       cat,
		jwtSecret: []byte(jwtSecret),
		gridSize:  gridSize,
	}
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Catalog   int    `json:"catalogSize"`
}

// @Summary Crear sesión
// @Description Arranca una sesión anónima con un grid random inicial
// @Tags session
// @Produce json
// @Success 201 {object} sessionResponse
// @Router /session [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	grid, err := h.cat.Sample(h.gridSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sess := h.mgr.Create(grid)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sess.ID,
		"iat": time.Now().Unix(),
	})
	sToken, err := token.SignedString(h.jwtSecret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("[session] sesión nueva %s (grid=%d, vivas=%d)", sess.ID, len(grid), h.mgr.Len())

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sessionResponse{
		SessionID: sess.ID,
		Token:     sToken,
		Catalog:   h.cat.Len(),
	})
}
