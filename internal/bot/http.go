package bot

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"bgbot/internal/content"
)

// HTTPServer exposes a small read-only API next to the health and webhook
// endpoints.
type HTTPServer struct {
	bot     *Bot
	started time.Time
}

// NewHTTPServer creates the API server for a bot instance
func NewHTTPServer(bot *Bot) *HTTPServer {
	return &HTTPServer{bot: bot, started: time.Now()}
}

// RegisterRoutes registers the API routes on the provided mux
func (hs *HTTPServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/status", hs.handleStatus)
	mux.HandleFunc("/api/user/", hs.handleUser)
	mux.HandleFunc("/api/categories/", hs.handleCategories)
}

func (hs *HTTPServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hs.bot.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (hs *HTTPServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	hs.writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(hs.started).Seconds()),
		"folders":        len(content.Folders),
	})
}

// handleUser returns the session for /api/user/{id}.
func (hs *HTTPServer) handleUser(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/user/")
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	sess, err := hs.bot.db.GetSession(r.Context(), userID)
	if err != nil {
		hs.bot.logger.Error("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if sess == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	hs.writeJSON(w, http.StatusOK, map[string]any{
		"user_id":       sess.UserID,
		"folder":        sess.Folder,
		"category":      sess.Category,
		"current_index": sess.CurrentIndex,
		"language_to":   sess.LanguageTo,
		"lesson_active": sess.LessonActive,
		"updated_at":    sess.UpdatedAt,
	})
}

// handleCategories returns the category list for /api/categories/{folder}.
func (hs *HTTPServer) handleCategories(w http.ResponseWriter, r *http.Request) {
	folder := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	if !content.ValidFolder(folder) {
		http.Error(w, "unknown folder", http.StatusNotFound)
		return
	}

	categories, err := hs.bot.content.Categories(r.Context(), folder)
	if err != nil {
		hs.bot.logger.Error("failed to list categories", zap.String("folder", folder), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	type categoryOut struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Emoji string `json:"emoji"`
	}
	out := make([]categoryOut, 0, len(categories))
	for _, id := range categories {
		c := content.CategoryByID(id)
		out = append(out, categoryOut{ID: id, Name: c.Name, Emoji: c.Emoji})
	}
	hs.writeJSON(w, http.StatusOK, map[string]any{"folder": folder, "categories": out})
}
