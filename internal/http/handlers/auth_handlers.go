package handlers

import (
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/shelfwatch/inventory-screen/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate an operator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 429 {string} string "Temporarily banned"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds UserLogin
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if banTracker.Banned(ctx, creds.Username) {
		http.Error(w, "too many failed logins, try again later", http.StatusTooManyRequests)
		return
	}

	op, ok := operators[creds.Username]
	if !ok || bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(creds.Password)) != nil {
		banTracker.RecordFailure(ctx, creds.Username)
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	banTracker.ClearStrikes(ctx, creds.Username)

	token, err := auth.GenerateToken(op.Username, op.DisplayName)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
