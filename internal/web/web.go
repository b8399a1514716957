// Package web provides JSON response helpers and the SPA static handler.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// JSON writes v as a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// Error writes an {"error": message} response with the given status code
func Error(w http.ResponseWriter, status int, message string) {
	log.Printf("Error: %s (status %d)", message, status)
	JSON(w, status, map[string]string{"error": message})
}

// SPAHandler serves the bundled single-page application from staticDir.
// Requests that match an existing asset get that asset; everything else
// falls back to the entry document so client-side routing works.
func SPAHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqPath := strings.TrimPrefix(r.URL.Path, "/")

		// Prevent path traversal out of the static directory
		if strings.Contains(reqPath, "..") {
			http.Error(w, "Invalid path", http.StatusBadRequest)
			return
		}

		if reqPath != "" {
			assetPath := filepath.Join(staticDir, filepath.FromSlash(reqPath))
			if info, err := os.Stat(assetPath); err == nil && !info.IsDir() {
				http.ServeFile(w, r, assetPath)
				return
			}
		}

		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
