package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/example/veritas-agent/internal/agents"
	"github.com/example/veritas-agent/internal/models"
	"github.com/example/veritas-agent/internal/ocr"
)

const analysisInstruction = "Analyze this health claim for misinformation: %s. " +
	"Return the verdict (True/False/Misleading), confidence, explanation, sources, and corrective info."

// Server exposes the analysis agent over HTTP.
type Server struct {
	agent       agents.Agent
	transcriber ocr.Transcriber
	log         *zap.Logger
}

func NewServer(agent agents.Agent, transcriber ocr.Transcriber, log *zap.Logger) *Server {
	return &Server{agent: agent, transcriber: transcriber, log: log}
}

// Handler builds the full route table wrapped in the standard middleware
// chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	return withCORS(withRequestLog(s.log, mux))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Veritas Health Agent API is running"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" && req.ImageBase64 == "" {
		s.respondError(w, http.StatusBadRequest, "No text or image provided")
		return
	}

	claim := req.Text
	if req.ImageBase64 != "" {
		extracted := s.transcriber.Transcribe(r.Context(), req.ImageBase64)
		if claim == "" {
			claim = extracted
		} else {
			claim = claim + "\n\nText extracted from attached image:\n" + extracted
		}
	}

	result, err := s.agent.Invoke(r.Context(), fmt.Sprintf(analysisInstruction, claim))
	if err != nil {
		s.log.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	result.Normalize()
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
