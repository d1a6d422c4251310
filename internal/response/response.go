package response

import (
	"encoding/json"
	"log"
	"net/http"

	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
)

// Envelope is the uniform wrapper returned by every endpoint. The status
// field mirrors the HTTP status code of the response.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

func JSON(w http.ResponseWriter, status int, message string, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{
		Status:  status,
		Message: message,
		Result:  result,
	})
}

// Fail is the single place where repository errors become HTTP statuses.
// Driver failures are logged server-side and never echoed to the client.
func Fail(w http.ResponseWriter, message string, err error) {
	switch {
	case apperrors.IsNotFound(err):
		JSON(w, http.StatusNotFound, message, err.Error())
	case apperrors.IsConflict(err):
		JSON(w, http.StatusConflict, message, err.Error())
	default:
		log.Println("❌", message+":", err)
		JSON(w, http.StatusInternalServerError, message, "Error desconocido")
	}
}
