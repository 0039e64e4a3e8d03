package helper

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	CurrentPage    int `json:"current_page"`
	RecordsPerPage int `json:"records_per_page"`
}

func WriteJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	writeResponse(w, status, Response{Success: status < 400, Message: message, Data: data})
}

func WritePage(w http.ResponseWriter, message string, data interface{}, page *Pagination) {
	writeResponse(w, http.StatusOK, Response{Success: true, Message: message, Data: data, Pagination: page})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	writeResponse(w, status, Response{Success: false, Message: message})
}

func writeResponse(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

const (
	maxRecordsPerPage = 100
	maxPage           = 100000
)

// ParsePagination reads page and recordPerPage. It returns nil when the
// caller did not ask for a page size. Both values are clamped so the skip
// offset stays in range.
func ParsePagination(r *http.Request) *Pagination {
	raw := r.URL.Query().Get("recordPerPage")
	if raw == "" {
		return nil
	}

	recordPerPage, err := strconv.Atoi(raw)
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}
	if recordPerPage > maxRecordsPerPage {
		recordPerPage = maxRecordsPerPage
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	return &Pagination{CurrentPage: page, RecordsPerPage: recordPerPage}
}

func (p *Pagination) Skip() int64 {
	return int64(p.CurrentPage-1) * int64(p.RecordsPerPage)
}
