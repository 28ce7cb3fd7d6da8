package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON body with the given status. A nil data
// value writes headers only, which delete and reset handlers rely on
// when they respond with a bare status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// NoContent writes a 204 for operations with nothing to report back,
// such as removing a player or clearing the roster.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
