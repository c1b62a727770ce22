package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/abdelrahmanemad10/GYM/internal/export"
	"github.com/abdelrahmanemad10/GYM/internal/middleware"
	"github.com/abdelrahmanemad10/GYM/internal/repository"
	"github.com/abdelrahmanemad10/GYM/internal/service"
	"github.com/abdelrahmanemad10/GYM/internal/workout"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	WeightKG *float64 `json:"weight_kg"`
	HeightCM *float64 `json:"height_cm"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logSetRequest struct {
	Date     string  `json:"date"`
	Day      string  `json:"day"`
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
}

type logBatchRequest struct {
	Date      string    `json:"date"`
	Day       string    `json:"day"`
	Exercises []string  `json:"exercises"`
	Weights   []float64 `json:"weights"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password, req.WeightKG, req.HeightCM)
	if errors.Is(err, service.ErrDuplicateUsername) {
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// WorkoutPlan returns the full training split
func (h *Handler) WorkoutPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, workout.Plan())
}

// WorkoutDay returns one day of the split
func (h *Handler) WorkoutDay(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["day"]
	day, ok := workout.Day(label)
	if !ok {
		http.Error(w, "Unknown workout day", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// LogSet records one weight observation for the authenticated user
func (h *Handler) LogSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req logSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Exercise == "" {
		http.Error(w, "Exercise is required", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.LogSet(userID, req.Date, req.Day, req.Exercise, req.Weight)
	if errors.Is(err, service.ErrInvalidWeight) {
		http.Error(w, "Weight must not be negative", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to log set", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// LogBatch records one observation per paired exercise and weight
func (h *Handler) LogBatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req logBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.LogBatch(userID, req.Date, req.Day, req.Exercises, req.Weights)
	if errors.Is(err, service.ErrInvalidWeight) {
		http.Error(w, "Weight must not be negative", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to log sets", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, entries)
}

// History returns all progress entries of the authenticated user, newest first
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.svc.History(userID)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// ExportHistoryXLSX downloads the history as an Excel workbook
func (h *Handler) ExportHistoryXLSX(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.svc.History(userID)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	data, err := export.HistoryWorkbook(entries)
	if err != nil {
		http.Error(w, "Failed to build workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="progress.xlsx"`)
	w.Write(data)
}

// ExportHistoryXML downloads the history as an XML training log
func (h *Handler) ExportHistoryXML(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.svc.GetUser(userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}

	entries, err := h.svc.History(userID)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	data, err := export.HistoryXML(user.Username, entries)
	if err != nil {
		http.Error(w, "Failed to build training log", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="training-log.xml"`)
	w.Write(data)
}

// DietPlan generates a diet plan text for the authenticated user
func (h *Handler) DietPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	plan, err := h.svc.GenerateDietPlan(userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate diet plan: %v", err), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"plan": plan})
}

// DietPlanPDF generates a diet plan and downloads it as a PDF
func (h *Handler) DietPlanPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.svc.GetUser(userID)
	if err != nil {
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}

	plan, err := h.svc.GenerateDietPlan(userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate diet plan: %v", err), http.StatusBadGateway)
		return
	}

	data, err := export.DietPlanPDF(user.Username, plan)
	if err != nil {
		http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="diet-plan.pdf"`)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
