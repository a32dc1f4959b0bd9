package handler

import (
	"context"
	"net/http"
	"strings"

	"movierec/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxSession ctxKey = "session"

// SessionAuth valida el token de sesión (HS256, sub = sessionId) y mete
// el handle de la sesión en el contexto. Token sin sesión viva (proceso
// reiniciado) devuelve 401 para que el front pida una sesión nueva.
func SessionAuth(secret string, mgr *session.Manager) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			sessionID, ok := claims["sub"].(string)
			if !ok || sessionID == "" {
				http.Error(w, "invalid sub in token", http.StatusUnauthorized)
				return
			}

			sess := mgr.Get(sessionID)
			if sess == nil {
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxSession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext saca el handle de sesión que dejó el middleware.
func SessionFromContext(ctx context.Context) *session.Session {
	if v := ctx.Value(ctxSession); v != nil {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
