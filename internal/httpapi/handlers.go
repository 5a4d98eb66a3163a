package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
	"github.com/textflow/textflow/pkg/textflow/ops"
	"github.com/textflow/textflow/pkg/textflow/pipeline"
	"github.com/textflow/textflow/pkg/textflow/store"
)

const (
	defaultFilename  = "Uploaded_Data.csv"
	historyRowLimit  = 50
	searchResultMax  = 15
	listEntriesLimit = 100
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}

	u := store.User{Name: req.FullName, Email: req.Email, Password: string(hash)}
	if err := s.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, internalerr.ErrDuplicate) {
			writeMessage(w, http.StatusBadRequest, "User exists")
			return
		}
		s.log.Error("create user", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeMessage(w, http.StatusCreated, "Success")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	u, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password))
	}
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "OK", "user": req.Email})
}

type analyzeRequest struct {
	Text         string                `json:"text"`
	Operations   []string              `json:"operations"`
	Params       map[string]ops.Params `json:"params"`
	EmailSummary bool                  `json:"email_summary"`
	Email        string                `json:"email"`
	Filename     string                `json:"filename"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Filename == "" {
		req.Filename = defaultFilename
	}

	out := s.pipe.Run(r.Context(), req.Text, req.Operations, req.Params)

	if out.Stats != nil {
		s.recordRun(r, req, out)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": out.Results,
		"stats":   out.Stats,
	})
}

// recordRun persists the run and optionally mails the report. Failures
// are logged, never surfaced: the analysis result already stands.
func (s *Server) recordRun(r *http.Request, req analyzeRequest, out pipeline.Output) {
	ctx := r.Context()

	reportData, err := json.Marshal(out.Results)
	if err != nil {
		s.log.Error("marshal report", "err", err)
		return
	}

	emailFlag := store.EmailNotSent
	statusNote := "Email not requested"
	if req.EmailSummary && req.Email != "" && s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.SendReport(req.Email, req.Filename, out.Results); err != nil {
			emailFlag = store.EmailFailed
			statusNote = "Report delivery failed"
		} else {
			emailFlag = store.EmailSent
			statusNote = fmt.Sprintf("Report dispatched to %s", req.Email)
		}
	}

	rows := out.Rows
	if len(rows) > historyRowLimit {
		rows = rows[:historyRowLimit]
	}
	processed := make([]store.ProcessedRow, len(rows))
	for i, content := range rows {
		var score float64
		if i < len(out.Scores) {
			score = out.Scores[i]
		}
		processed[i] = store.ProcessedRow{Content: content, Score: score}
	}
	if err := s.store.AddProcessedRows(ctx, processed); err != nil {
		s.log.Error("persist processed rows", "err", err)
	}

	entry := store.InboxEntry{
		Title:      "Analysis Task Completed",
		Message:    fmt.Sprintf("Processed %d records. Status: %s", len(out.Rows), statusNote),
		Type:       "success",
		ReportData: string(reportData),
		EmailSent:  emailFlag,
	}
	if err := s.store.AddInboxEntry(ctx, entry); err != nil {
		s.log.Error("persist inbox entry", "err", err)
	}

	activity := store.Activity{
		Filename:       req.Filename,
		Operations:     req.Operations,
		Status:         "Completed",
		RecordsCount:   len(out.Rows),
		ProcessingTime: out.Stats.ProcessingTime,
		ReportData:     string(reportData),
	}
	if err := s.store.AddActivity(ctx, activity); err != nil {
		s.log.Error("persist activity", "err", err)
	}
}

func (s *Server) handleInbox(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListInbox(r.Context(), listEntriesLimit)
	if err != nil {
		s.log.Error("list inbox", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}

	type inboxItem struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Message    string `json:"message"`
		Type       string `json:"type"`
		ReportData string `json:"report_data"`
		EmailSent  int    `json:"email_sent"`
		Timestamp  string `json:"timestamp"`
	}
	items := make([]inboxItem, len(entries))
	for i, e := range entries {
		items[i] = inboxItem{
			ID: e.ID, Title: e.Title, Message: e.Message, Type: e.Type,
			ReportData: e.ReportData, EmailSent: e.EmailSent,
			Timestamp: e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListActivity(r.Context(), listEntriesLimit)
	if err != nil {
		s.log.Error("list activity", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}

	type historyItem struct {
		ID             string  `json:"id"`
		Filename       string  `json:"filename"`
		Operations     string  `json:"operations"`
		Status         string  `json:"status"`
		RecordsCount   int     `json:"records_count"`
		ProcessingTime float64 `json:"processing_time"`
		ReportData     string  `json:"report_data"`
		Timestamp      string  `json:"timestamp"`
	}
	out := make([]historyItem, len(items))
	for i, a := range items {
		out[i] = historyItem{
			ID: a.ID, Filename: a.Filename,
			Operations: strings.Join(a.Operations, ", "),
			Status:     a.Status, RecordsCount: a.RecordsCount,
			ProcessingTime: a.ProcessingTime, ReportData: a.ReportData,
			Timestamp: a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	rows, err := s.store.SearchProcessed(r.Context(), q, searchResultMax)
	if err != nil {
		s.log.Error("search", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}

	type searchItem struct {
		ID      string  `json:"id"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	}
	items := make([]searchItem, len(rows))
	for i, row := range rows {
		items[i] = searchItem{ID: row.ID, Content: row.Content, Score: row.Score}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Results []pipeline.OperationResult `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=report.csv")
	cw := csv.NewWriter(w)
	cw.Write([]string{"Operation", "Processed Output"})
	for _, res := range req.Results {
		cw.Write([]string{res.Title, res.Output})
	}
	cw.Flush()
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, operationCatalog(s.pipe.Registry()))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	m := store.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := s.store.AddContactMessage(r.Context(), m); err != nil {
		s.log.Error("persist contact message", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeMessage(w, http.StatusCreated, "Received")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "Active"})
}
