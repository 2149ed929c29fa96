package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed web
var webFiles embed.FS

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webFiles.ReadFile("web/index.html")
	if err != nil {
		s.log.Error("failed to read index page.", slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func staticHandler() http.Handler {
	root, err := fs.Sub(webFiles, "web")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(root))
}
