package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/jwt"
	"github.com/quizforge/quizforge/internal/middlewares"
)

// authedRequest builds a request carrying verified claims, the way the auth
// middleware hands requests to protected handlers.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	claims := &jwt.Claims{UserID: userID, Username: "tester"}
	return req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
}
