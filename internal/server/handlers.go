package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/talentscout/internal/export"
	"github.com/jonathan/talentscout/internal/report"
	"github.com/jonathan/talentscout/internal/store"
	"github.com/jonathan/talentscout/internal/types"
	"github.com/jonathan/talentscout/internal/wizard"
)

// sessionResponse is the wire shape of a session's public state.
type sessionResponse struct {
	ID         string                 `json:"id"`
	Stage      string                 `json:"stage"`
	StageLabel string                 `json:"stage_label"`
	Step       int                    `json:"step"`
	TotalSteps int                    `json:"total_steps"`
	ErrorCount int                    `json:"error_count"`
	Done       bool                   `json:"done"`
	Record     *types.CandidateRecord `json:"record"`
}

func newSessionResponse(id string, state types.SessionState) sessionResponse {
	current, total := state.Stage.Progress()
	return sessionResponse{
		ID:         id,
		Stage:      state.Stage.String(),
		StageLabel: state.Stage.DisplayName(),
		Step:       min(current+1, total),
		TotalSteps: total,
		ErrorCount: state.ErrorCount,
		Done:       state.Done(),
		Record:     &state.Record,
	}
}

// handleCreateSession starts a new conversation and returns the welcome
// message alongside the session ID.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.CreateSession(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	if err := s.store.AppendMessage(r.Context(), session.ID, store.RoleAssistant, wizard.Welcome); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to record welcome message")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"session": newSessionResponse(session.ID, session.State),
		"reply":   wizard.Welcome,
	})
}

// handleGetSession returns a session's current state.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, newSessionResponse(session.ID, session.State))
}

// handleDeleteSession removes a session and its transcript.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteSession(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// messageRequest is the body of a conversation turn.
type messageRequest struct {
	Content string `json:"content"`
}

// handlePostMessage runs one conversation turn: load state, process the
// candidate's message, persist the outcome and the transcript entries.
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	reply, state := s.driver.Process(r.Context(), req.Content, session.State)

	if err := s.store.SaveSession(r.Context(), session.ID, state); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	if err := s.store.AppendMessage(r.Context(), session.ID, store.RoleCandidate, req.Content); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to record message")
		return
	}
	if err := s.store.AppendMessage(r.Context(), session.ID, store.RoleAssistant, reply); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to record reply")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reply":   reply,
		"session": newSessionResponse(session.ID, state),
	})
}

// transcriptEntry is the wire shape of one transcript message.
type transcriptEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// handleTranscript returns the full message history of a session.
func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	messages, err := s.store.Transcript(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load transcript")
		return
	}

	entries := make([]transcriptEntry, 0, len(messages))
	for _, msg := range messages {
		entries = append(entries, transcriptEntry{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"transcript": entries})
}

// handleReport renders the recruiter assessment report for a session.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"report": report.Assessment(&session.State.Record, time.Now()),
	})
}

// handleExport writes the JSON and CSV submission files for a completed
// session. Incomplete records get a 409 listing the missing fields.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	result, err := s.exporter.Export(r.Context(), &session.State.Record)
	var incomplete *export.IncompleteRecordError
	if errors.As(err, &incomplete) {
		s.jsonResponse(w, http.StatusConflict, map[string]any{
			"error":          "record_incomplete",
			"missing_fields": incomplete.Fields,
		})
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "export failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"json_path": result.JSONPath,
		"csv_path":  result.CSVPath,
	})
}

// loadSession resolves the {id} path value to a stored session, writing
// the error response itself when the session cannot be loaded.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	session, err := s.store.GetSession(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load session")
		return nil, false
	}
	return session, true
}
