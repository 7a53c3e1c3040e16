package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/transcribe"
)

// maxClipBytes bounds uploaded audio clips.
const maxClipBytes = int64(25 << 20)

type parseTextRequest struct {
	Text string `json:"text"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleParseText turns one sentence into an expense record.
func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	var req parseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.WithError(err).Warn("rejecting malformed parse request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	record, err := s.extractor.Extract(r.Context(), req.Text)
	if err != nil {
		s.log.WithError(err).Error("entity annotation failed")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "entity annotation failed"})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleTranscribe accepts a multipart audio clip and returns its text.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if !s.transcriber.Available() {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "transcription unavailable"})
		return
	}

	if err := r.ParseMultipartForm(maxClipBytes); err != nil {
		s.log.WithError(err).Warn("rejecting malformed multipart form")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no file provided"})
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		s.log.WithError(err).Error("reading uploaded clip failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "reading upload failed"})
		return
	}

	text, err := s.transcriber.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		if errors.Is(err, transcribe.ErrUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "transcription unavailable"})
			return
		}
		s.log.WithError(err).Error("transcription failed",
			logging.Field{Key: "filename", Value: header.Filename})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "transcription failed"})
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{Text: text})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
