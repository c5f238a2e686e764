package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/framepeach/framepeach/internal/common"
)

type registerRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Token     string `json:"token,omitempty"`
}

type apiResponse struct {
	Message string       `json:"message"`
	Success bool         `json:"success"`
	User    *userPayload `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: "invalid request body"})
		return
	}

	_, err := s.userService.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, apiResponse{Message: "all fields are required"})
		case errors.Is(err, common.ErrorAlreadyExists):
			writeJSON(w, http.StatusBadRequest, apiResponse{Message: "user already exists"})
		default:
			s.logger.Error(r.Context(), "register failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, apiResponse{Message: "server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, apiResponse{Message: "user registered successfully", Success: true})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: "invalid request body"})
		return
	}

	user, token, err := s.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, apiResponse{Message: "user not found"})
		case errors.Is(err, common.ErrorUnauthorized):
			writeJSON(w, http.StatusUnauthorized, apiResponse{Message: "invalid credentials"})
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, apiResponse{Message: "server error"})
		}
		return
	}

	// the password hash never leaves the service layer
	writeJSON(w, http.StatusOK, apiResponse{
		Message: "login successful",
		Success: true,
		User: &userPayload{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Token:     token,
		},
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Message: "unauthorized"})
		return
	}

	user, err := s.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Message: "user not found"})
			return
		}
		s.logger.Error(r.Context(), "me failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Message: "server error"})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Message: "ok",
		Success: true,
		User: &userPayload{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	})
}
