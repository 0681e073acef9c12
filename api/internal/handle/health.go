package handle

import "net/http"

func (h *Handle) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Design Evaluator API is running"})
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Design Evaluator API is operational",
	})
}
