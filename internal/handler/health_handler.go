package handler

import "net/http"

// Health responde "ok"; no toca el dataset.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
