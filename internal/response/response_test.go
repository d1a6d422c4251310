package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&env))
	return env
}

func TestJSONMirrorsStatusInEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, "Cliente creado correctamente", map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := decode(t, w)
	assert.Equal(t, 201, env.Status)
	assert.Equal(t, "Cliente creado correctamente", env.Message)
}

func TestFailMapsNotFoundTo404(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, "Error al eliminar cliente", apperrors.NewNotFound("El cliente no existe o ya fue eliminado"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.Equal(t, 404, env.Status)
	assert.Equal(t, "El cliente no existe o ya fue eliminado", env.Result)
}

func TestFailMapsConflictTo409(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, "Error al crear cliente", apperrors.NewConflict("El cliente con EmailAddress: 'a@b.c' ya existe"))

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decode(t, w)
	assert.Equal(t, 409, env.Status)
}

func TestFailHidesDriverErrorsFromClients(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, "Error al obtener clientes", errors.New("mssql: login failed for user 'sa'"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Error desconocido", env.Result)
	assert.NotContains(t, env.Message, "sa")
}
