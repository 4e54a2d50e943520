package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/logitrack/assist/internal/app/chat"
	"github.com/logitrack/assist/internal/app/filter"
	"github.com/logitrack/assist/internal/app/fleet"
	"github.com/logitrack/assist/internal/app/status"
	"github.com/logitrack/assist/internal/domain"
)

type Server struct {
	chatSvc  *chat.Service
	fleetSvc *fleet.Service
}

func NewServer(chatSvc *chat.Service, fleetSvc *fleet.Service) http.Handler {
	s := &Server{chatSvc: chatSvc, fleetSvc: fleetSvc}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /sessions → create session (POST)
	mux.HandleFunc("/sessions", s.handleSessions)

	// /sessions/{id}          →  GET: session + transcript
	// /sessions/{id}/messages → POST: submit user message
	mux.HandleFunc("/sessions/", s.handleSessionWithID)

	mux.HandleFunc("/shipments", s.handleShipments)
	mux.HandleFunc("/vehicles", s.handleVehicles)
	mux.HandleFunc("/fleet/summary", s.handleFleetSummary)

	return chainMiddlewares(mux, withLogging, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type sessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type turnResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type createSessionResponse struct {
	Session  sessionResponse `json:"session"`
	Greeting turnResponse    `json:"greeting"`
}

type getSessionResponse struct {
	Session sessionResponse `json:"session"`
	Turns   []turnResponse  `json:"turns"`
	Busy    bool            `json:"busy"`
}

type submitRequest struct {
	Text string `json:"text"`
}

type submitResponse struct {
	Accepted bool          `json:"accepted"`
	UserTurn *turnResponse `json:"user_turn,omitempty"`
	Busy     bool          `json:"busy"`
}

type presentationResponse struct {
	ColorToken string `json:"color_token"`
	Label      string `json:"label"`
	Icon       string `json:"icon,omitempty"`
}

type shipmentResponse struct {
	ID          string               `json:"id"`
	Origin      string               `json:"origin"`
	Destination string               `json:"destination"`
	Status      string               `json:"status"`
	Priority    string               `json:"priority"`
	Progress    int                  `json:"progress"`
	ETA         string               `json:"eta"`
	Weight      string               `json:"weight"`
	Driver      string               `json:"driver"`
	Customer    string               `json:"customer"`
	Badge       presentationResponse `json:"badge"`
	PriorityTag presentationResponse `json:"priority_tag"`
}

type fuelLevelResponse struct {
	Bucket     string `json:"bucket"`
	ColorToken string `json:"color_token"`
	Label      string `json:"label"`
}

type vehicleResponse struct {
	ID         string               `json:"id"`
	Model      string               `json:"model"`
	Driver     string               `json:"driver"`
	Location   string               `json:"location"`
	Fuel       int                  `json:"fuel"`
	Status     string               `json:"status"`
	LastUpdate string               `json:"last_update"`
	Badge      presentationResponse `json:"badge"`
	FuelLevel  fuelLevelResponse    `json:"fuel_level"`
}

type summaryResponse struct {
	ActiveVehicles      int            `json:"active_vehicles"`
	IdleVehicles        int            `json:"idle_vehicles"`
	MaintenanceVehicles int            `json:"maintenance_vehicles"`
	LowFuelVehicles     int            `json:"low_fuel_vehicles"`
	ShipmentsByStatus   map[string]int `json:"shipments_by_status"`
}

// ─────────────────────────────────────────────
// Chat handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// /sessions
func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateSession(w, r)
	default:
		methodNotAllowed(w)
	}
}

// /sessions/{id} or /sessions/{id}/messages
func (s *Server) handleSessionWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(path, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleGetSession(w, r, domain.SessionID(id))
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 && parts[1] == "messages" {
		switch r.Method {
		case http.MethodPost:
			s.handleSubmit(w, r, domain.SessionID(id))
		default:
			methodNotAllowed(w)
		}
		return
	}

	http.NotFound(w, r)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	out, err := s.chatSvc.StartSession(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	resp := createSessionResponse{
		Session:  toSessionResponse(out.Session),
		Greeting: toTurnResponse(out.Greeting),
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	session, turns, err := s.chatSvc.Transcript(r.Context(), id, 0)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	resp := getSessionResponse{
		Session: toSessionResponse(session),
		Turns:   toTurnsResponse(turns),
		Busy:    s.chatSvc.Busy(id),
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, sessionID domain.SessionID) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.chatSvc.Submit(r.Context(), chat.SubmitInput{
		SessionID: sessionID,
		Text:      req.Text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	resp := submitResponse{
		Accepted: out.Accepted,
		Busy:     s.chatSvc.Busy(sessionID),
	}
	if out.UserTurn != nil {
		t := toTurnResponse(out.UserTurn)
		resp.UserTurn = &t
	}

	writeJSON(w, http.StatusOK, resp)
}

// ─────────────────────────────────────────────
// Fleet handlers
// ─────────────────────────────────────────────

func (s *Server) handleShipments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	criteria := filter.ShipmentCriteria{
		Query:    q.Get("q"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	}

	records := s.fleetSvc.Shipments(r.Context(), criteria)

	out := make([]shipmentResponse, 0, len(records))
	for _, sh := range records {
		out = append(out, toShipmentResponse(sh))
	}

	writeJSON(w, http.StatusOK, map[string]any{"shipments": out})
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	criteria := filter.VehicleCriteria{
		Query:  q.Get("q"),
		Status: q.Get("status"),
		Fuel:   q.Get("fuel"),
	}

	records := s.fleetSvc.Vehicles(r.Context(), criteria)

	out := make([]vehicleResponse, 0, len(records))
	for _, v := range records {
		out = append(out, toVehicleResponse(v))
	}

	writeJSON(w, http.StatusOK, map[string]any{"vehicles": out})
}

func (s *Server) handleFleetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	sum := s.fleetSvc.Summary(r.Context())

	byStatus := make(map[string]int, len(sum.ShipmentsByStatus))
	for k, v := range sum.ShipmentsByStatus {
		byStatus[string(k)] = v
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		ActiveVehicles:      sum.ActiveVehicles,
		IdleVehicles:        sum.IdleVehicles,
		MaintenanceVehicles: sum.MaintenanceVehicles,
		LowFuelVehicles:     sum.LowFuelVehicles,
		ShipmentsByStatus:   byStatus,
	})
}

// ─────────────────────────────────────────────
// Response mapping
// ─────────────────────────────────────────────

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        string(s.ID),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toTurnResponse(t *domain.ChatTurn) turnResponse {
	return turnResponse{
		ID:        string(t.ID),
		SessionID: string(t.SessionID),
		Author:    string(t.Author),
		Text:      t.Text,
		Reference: string(t.Reference),
		CreatedAt: t.CreatedAt,
	}
}

func toTurnsResponse(turns []*domain.ChatTurn) []turnResponse {
	out := make([]turnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, toTurnResponse(t))
	}
	return out
}

func toPresentationResponse(p status.Presentation) presentationResponse {
	return presentationResponse{
		ColorToken: p.ColorToken,
		Label:      p.Label,
		Icon:       p.Icon,
	}
}

func toShipmentResponse(s domain.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:          string(s.ID),
		Origin:      s.Origin,
		Destination: s.Destination,
		Status:      string(s.Status),
		Priority:    string(s.Priority),
		Progress:    s.ProgressPercent,
		ETA:         s.ETALabel,
		Weight:      s.Weight,
		Driver:      s.Driver,
		Customer:    s.Customer,
		Badge:       toPresentationResponse(status.ClassifyStatus(string(s.Status))),
		PriorityTag: toPresentationResponse(status.ClassifyPriority(string(s.Priority))),
	}
}

func toVehicleResponse(v domain.Vehicle) vehicleResponse {
	level := status.ClassifyFuelLevel(v.FuelPercent)
	return vehicleResponse{
		ID:         string(v.ID),
		Model:      v.Model,
		Driver:     v.Driver,
		Location:   v.Location,
		Fuel:       v.FuelPercent,
		Status:     string(v.Status),
		LastUpdate: v.LastUpdate,
		Badge:      toPresentationResponse(status.ClassifyStatus(string(v.Status))),
		FuelLevel: fuelLevelResponse{
			Bucket:     string(level.Bucket),
			ColorToken: level.ColorToken,
			Label:      level.Label,
		},
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
