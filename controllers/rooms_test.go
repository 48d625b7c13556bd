package controllers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"bingo-rooms/models"
	"bingo-rooms/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewRoomService(services.NewMemoryStore(), rand.New(rand.NewSource(1)))
	Init(svc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/rooms", CreateRoom)
	api.GET("/rooms/:id", GetRoom)
	api.GET("/rooms/code/:code", GetRoomByCode)
	api.PATCH("/rooms/:id/status", UpdateRoomStatus)
	api.POST("/rooms/:id/draw", DrawNumber)
	api.POST("/rooms/:id/join", JoinRoom)
	api.GET("/rooms/:id/players", ListPlayers)
	api.GET("/players/:id/card", GetCard)
	api.POST("/cards/:id/mark", MarkNumber)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRoomHandler(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, "POST", "/api/rooms", gin.H{"name": "Office Party"})
	require.Equal(t, http.StatusCreated, w.Code)

	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "Office Party", room.Name)
	assert.Len(t, room.Code, 6)
	assert.Equal(t, "waiting", string(room.Status))
}

func TestCreateRoomHandlerValidation(t *testing.T) {
	r := setupTestRouter()
	w := doJSON(t, r, "POST", "/api/rooms", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomNotFound(t *testing.T) {
	r := setupTestRouter()
	w := doJSON(t, r, "GET", "/api/rooms/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinAndDrawFlow(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, "POST", "/api/rooms", gin.H{"name": "Flow"})
	require.Equal(t, http.StatusCreated, w.Code)
	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))

	// Lookup by code is case-insensitive.
	w = doJSON(t, r, "GET", "/api/rooms/code/"+room.Code, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/api/rooms/"+room.ID+"/join",
		gin.H{"name": "Alice", "session_id": "sess-1"})
	require.Equal(t, http.StatusOK, w.Code)

	var joined struct {
		Player models.Player `json:"player"`
		Card   models.Card   `json:"card"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))
	assert.NotEmpty(t, joined.Player.ID)
	assert.NotEmpty(t, joined.Card.ID)

	// Drawing before the room enters drawing state conflicts.
	w = doJSON(t, r, "POST", "/api/rooms/"+room.ID+"/draw", gin.H{"number": 7})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "PATCH", "/api/rooms/"+room.ID+"/status", gin.H{"status": "drawing"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/api/rooms/"+room.ID+"/draw", gin.H{"number": 7})
	require.Equal(t, http.StatusOK, w.Code)

	// Marking an undrawn number conflicts, a drawn one succeeds.
	w = doJSON(t, r, "POST", "/api/cards/"+joined.Card.ID+"/mark", gin.H{"number": 8})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "POST", "/api/cards/"+joined.Card.ID+"/mark", gin.H{"number": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	// New players cannot join a drawing room.
	w = doJSON(t, r, "POST", "/api/rooms/"+room.ID+"/join",
		gin.H{"name": "Bob", "session_id": "sess-2"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The original session still re-joins fine.
	w = doJSON(t, r, "POST", "/api/rooms/"+room.ID+"/join",
		gin.H{"name": "Alice", "session_id": "sess-1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/rooms/"+room.ID+"/players", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var players []models.Player
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &players))
	assert.Len(t, players, 1)
}

func TestDrawRandomHandler(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, "POST", "/api/rooms", gin.H{"name": "Random"})
	require.Equal(t, http.StatusCreated, w.Code)
	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))

	w = doJSON(t, r, "PATCH", "/api/rooms/"+room.ID+"/status", gin.H{"status": "drawing"})
	require.Equal(t, http.StatusOK, w.Code)

	// Empty body draws a random number.
	w = doJSON(t, r, "POST", "/api/rooms/"+room.ID+"/draw", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Number int `json:"number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.Number, 1)
	assert.LessOrEqual(t, resp.Number, 75)
}
