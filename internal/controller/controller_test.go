package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"relationship_service/internal/config"
	"relationship_service/internal/repository"
	"relationship_service/internal/service"
	"relationship_service/internal/testutil"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	typeRepo := repository.NewRelationshipTypeRepository(db, nil, 0)
	relRepo := repository.NewUserRelationshipRepository(db)
	types := NewRelationshipTypeController(service.NewRelationshipTypeService(typeRepo, relRepo))
	rels := NewUserRelationshipController(
		service.NewUserRelationshipService(relRepo, typeRepo),
		config.PaginationConfig{DefaultSize: 20, MaxSize: 50},
	)
	health := NewHealthController(db, nil, config.ServerConfig{ServiceName: "relationship-service", Version: "test"})

	r := gin.New()
	r.GET("/health", health.HealthCheck)
	r.GET("/health/detailed", health.DetailedHealthCheck)

	rt := r.Group("/relationship-types")
	rt.GET("", types.ListRelationshipTypes)
	rt.GET("/search", types.SearchRelationshipTypes)
	rt.GET("/name/:name", types.GetRelationshipTypeByName)
	rt.GET("/:id", types.GetRelationshipType)
	rt.GET("/:id/reverse-of", types.GetReverseTypes)
	rt.POST("", types.CreateRelationshipType)
	rt.PUT("/:id", types.UpdateRelationshipType)
	rt.DELETE("/:id", types.DeleteRelationshipType)

	ur := r.Group("/relationships")
	ur.GET("/user/:userId", rels.GetUserRelationships)
	ur.GET("/user/:userId/stats", rels.GetUserRelationshipStats)
	ur.GET("/between/:user1Id/:user2Id", rels.GetRelationshipsBetween)
	ur.GET("/exists/:user1Id/:user2Id", rels.CheckRelationshipExists)
	ur.GET("/:id", rels.GetRelationship)
	ur.POST("", rels.CreateRelationship)
	ur.PUT("/:id", rels.UpdateRelationship)
	ur.DELETE("/:id", rels.DeleteRelationship)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	assert.NotEmpty(t, env.Timestamp)
	return w.Code, env
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func createType(t *testing.T, r http.Handler, body map[string]interface{}) RelationshipTypeResponse {
	t.Helper()
	code, env := doRequest(t, r, http.MethodPost, "/relationship-types", body)
	require.Equal(t, http.StatusCreated, code, env.Message)

	var rt RelationshipTypeResponse
	decode(t, env.Data, &rt)
	return rt
}

func TestRelationshipTypeController_CRUD(t *testing.T) {
	r := newTestRouter(t)

	father := createType(t, r, map[string]interface{}{"name": "Father", "category": "FAMILY"})
	son := createType(t, r, map[string]interface{}{
		"name":          "Son",
		"category":      "FAMILY",
		"reverseTypeId": father.ID,
		"metadata":      map[string]string{"generation": "child"},
	})
	require.NotNil(t, son.ReverseTypeID)
	assert.Equal(t, father.ID, *son.ReverseTypeID)
	assert.JSONEq(t, `{"generation":"child"}`, string(son.Metadata))

	code, env := doRequest(t, r, http.MethodGet, "/relationship-types/name/Son", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = doRequest(t, r, http.MethodGet, "/relationship-types?category=family", nil)
	assert.Equal(t, http.StatusOK, code)
	var list []RelationshipTypeResponse
	decode(t, env.Data, &list)
	assert.Len(t, list, 2)

	code, env = doRequest(t, r, http.MethodGet, "/relationship-types/search?name=SO", nil)
	assert.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Son", list[0].Name)

	code, env = doRequest(t, r, http.MethodGet, "/relationship-types/1/reverse-of", nil)
	assert.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &list)
	assert.Len(t, list, 1)

	code, env = doRequest(t, r, http.MethodPut, "/relationship-types/2", map[string]interface{}{"bidirectional": true})
	assert.Equal(t, http.StatusOK, code)
	var updated RelationshipTypeResponse
	decode(t, env.Data, &updated)
	assert.True(t, updated.Bidirectional)
	assert.Equal(t, "Son", updated.Name)

	code, _ = doRequest(t, r, http.MethodDelete, "/relationship-types/2", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = doRequest(t, r, http.MethodGet, "/relationship-types/2", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
}

func TestRelationshipTypeController_Errors(t *testing.T) {
	r := newTestRouter(t)
	createType(t, r, map[string]interface{}{"name": "Friend", "category": "SOCIAL", "bidirectional": true})
	createType(t, r, map[string]interface{}{"name": "Colleague", "category": "PROFESSIONAL"})

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
	}{
		{"duplicate name", http.MethodPost, "/relationship-types", map[string]interface{}{"name": "Friend", "category": "SOCIAL"}, http.StatusConflict},
		{"missing name", http.MethodPost, "/relationship-types", map[string]interface{}{"category": "SOCIAL"}, http.StatusBadRequest},
		{"bad category", http.MethodPost, "/relationship-types", map[string]interface{}{"name": "X", "category": "ENEMY"}, http.StatusBadRequest},
		{"unknown reverse", http.MethodPost, "/relationship-types", map[string]interface{}{"name": "X", "category": "SOCIAL", "reverseTypeId": 99}, http.StatusNotFound},
		{"rename conflict", http.MethodPut, "/relationship-types/1", map[string]interface{}{"name": "Colleague"}, http.StatusConflict},
		{"self rename", http.MethodPut, "/relationship-types/1", map[string]interface{}{"name": "Friend"}, http.StatusOK},
		{"update missing", http.MethodPut, "/relationship-types/99", map[string]interface{}{"name": "Y"}, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/relationship-types/99", nil, http.StatusNotFound},
		{"invalid id", http.MethodGet, "/relationship-types/abc", nil, http.StatusBadRequest},
		{"unknown name", http.MethodGet, "/relationship-types/name/Enemy", nil, http.StatusNotFound},
		{"search without name", http.MethodGet, "/relationship-types/search", nil, http.StatusBadRequest},
		{"bad bidirectional filter", http.MethodGet, "/relationship-types?bidirectional=maybe", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := doRequest(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, code, env.Message)
			assert.Equal(t, code < 300, env.Success)
		})
	}
}

func TestUserRelationshipController_FriendScenario(t *testing.T) {
	r := newTestRouter(t)
	friend := createType(t, r, map[string]interface{}{"name": "Friend", "category": "SOCIAL", "bidirectional": true})

	code, env := doRequest(t, r, http.MethodPost, "/relationships", map[string]interface{}{
		"user1Id":            10,
		"user2Id":            20,
		"relationshipTypeId": friend.ID,
		"startDate":          "2020-01-01",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var created UserRelationshipResponse
	decode(t, env.Data, &created)
	assert.Equal(t, "ACTIVE", created.Status)
	require.NotNil(t, created.StartDate)
	assert.Equal(t, "2020-01-01", *created.StartDate)
	require.NotNil(t, created.RelationshipType)
	assert.Equal(t, "Friend", created.RelationshipType.Name)

	// 反向用户对视为重复
	code, env = doRequest(t, r, http.MethodPost, "/relationships", map[string]interface{}{
		"user1Id":            20,
		"user2Id":            10,
		"relationshipTypeId": friend.ID,
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/exists/20/10?activeOnly=true", nil)
	assert.Equal(t, http.StatusOK, code)
	var exists ExistsResponse
	decode(t, env.Data, &exists)
	assert.True(t, exists.Exists)

	code, env = doRequest(t, r, http.MethodPut, "/relationships/1", map[string]interface{}{
		"status":  "ENDED",
		"endDate": "2021-06-30",
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	var updated UserRelationshipResponse
	decode(t, env.Data, &updated)
	assert.Equal(t, "ENDED", updated.Status)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2021-06-30", *updated.EndDate)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/exists/10/20?activeOnly=true", nil)
	assert.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &exists)
	assert.False(t, exists.Exists)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/exists/10/20", nil)
	assert.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &exists)
	assert.True(t, exists.Exists)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/user/20/stats", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"totalRelationships":1,"activeRelationships":0,"endedRelationships":1}`, string(env.Data))
}

func TestUserRelationshipController_ListForUser(t *testing.T) {
	r := newTestRouter(t)
	friend := createType(t, r, map[string]interface{}{"name": "Friend", "category": "SOCIAL", "bidirectional": true})
	colleague := createType(t, r, map[string]interface{}{"name": "Colleague", "category": "PROFESSIONAL", "bidirectional": true})

	for other := 2; other <= 4; other++ {
		code, env := doRequest(t, r, http.MethodPost, "/relationships", map[string]interface{}{
			"user1Id": 1, "user2Id": other, "relationshipTypeId": friend.ID,
		})
		require.Equal(t, http.StatusCreated, code, env.Message)
	}
	code, env := doRequest(t, r, http.MethodPost, "/relationships", map[string]interface{}{
		"user1Id": 5, "user2Id": 1, "relationshipTypeId": colleague.ID, "status": "PENDING",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/user/1?page=1&size=3", nil)
	require.Equal(t, http.StatusOK, code)
	var page PaginatedRelationshipResponse
	decode(t, env.Data, &page)
	assert.Equal(t, int64(4), page.Pagination.TotalElements)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, 1, page.Pagination.Page)
	require.Len(t, page.Relationships, 1)
	assert.Equal(t, uint(5), page.Relationships[0].User1ID)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/user/1?size=500", nil)
	require.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &page)
	assert.Equal(t, 50, page.Pagination.Size, "size is capped at the configured maximum")

	code, env = doRequest(t, r, http.MethodGet, "/relationships/user/1?status=pending", nil)
	require.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &page)
	assert.Equal(t, int64(1), page.Pagination.TotalElements)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/user/1?category=SOCIAL", nil)
	require.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &page)
	assert.Equal(t, int64(3), page.Pagination.TotalElements)

	code, env = doRequest(t, r, http.MethodGet, "/relationships/between/3/1", nil)
	require.Equal(t, http.StatusOK, code)
	var between []UserRelationshipResponse
	decode(t, env.Data, &between)
	assert.Len(t, between, 1)

	code, _ = doRequest(t, r, http.MethodGet, "/relationships/user/1?status=UNKNOWN", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doRequest(t, r, http.MethodGet, "/relationships/user/1?page=-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUserRelationshipController_Errors(t *testing.T) {
	r := newTestRouter(t)
	friend := createType(t, r, map[string]interface{}{"name": "Friend", "category": "SOCIAL"})

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
	}{
		{"self relationship", http.MethodPost, "/relationships", map[string]interface{}{"user1Id": 7, "user2Id": 7, "relationshipTypeId": friend.ID}, http.StatusBadRequest},
		{"unknown type", http.MethodPost, "/relationships", map[string]interface{}{"user1Id": 1, "user2Id": 2, "relationshipTypeId": 99}, http.StatusNotFound},
		{"missing user", http.MethodPost, "/relationships", map[string]interface{}{"user2Id": 2, "relationshipTypeId": friend.ID}, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/relationships", map[string]interface{}{"user1Id": 1, "user2Id": 2, "relationshipTypeId": friend.ID, "startDate": "01/02/2020"}, http.StatusBadRequest},
		{"inverted dates", http.MethodPost, "/relationships", map[string]interface{}{"user1Id": 1, "user2Id": 2, "relationshipTypeId": friend.ID, "startDate": "2020-02-01", "endDate": "2020-01-01"}, http.StatusBadRequest},
		{"get missing", http.MethodGet, "/relationships/99", nil, http.StatusNotFound},
		{"update missing", http.MethodPut, "/relationships/99", map[string]interface{}{"status": "ENDED"}, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/relationships/99", nil, http.StatusNotFound},
		{"zero context", http.MethodPost, "/relationships", map[string]interface{}{"user1Id": 1, "user2Id": 2, "relationshipTypeId": friend.ID, "contextId": 0}, http.StatusBadRequest},
		{"zero context filter", http.MethodGet, "/relationships/user/1?contextId=0", nil, http.StatusBadRequest},
		{"page offset overflow", http.MethodGet, "/relationships/user/1?page=461168601842738791&size=20", nil, http.StatusBadRequest},
		{"bad user pair", http.MethodGet, "/relationships/between/x/1", nil, http.StatusBadRequest},
		{"bad activeOnly", http.MethodGet, "/relationships/exists/1/2?activeOnly=perhaps", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := doRequest(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, code, env.Message)
			assert.False(t, env.Success)
		})
	}
}

func TestHealthController(t *testing.T) {
	r := newTestRouter(t)

	code, env := doRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	var health HealthResponse
	decode(t, env.Data, &health)
	assert.Equal(t, StatusUp, health.Status)
	assert.Equal(t, StatusUp, health.Components["database"])
	assert.NotContains(t, health.Components, "redis")

	code, env = doRequest(t, r, http.MethodGet, "/health/detailed", nil)
	assert.Equal(t, http.StatusOK, code)
	var detailed DetailedHealthResponse
	decode(t, env.Data, &detailed)
	assert.Equal(t, "test", detailed.Version)
	assert.Equal(t, "sqlite", detailed.Database["dialect"])
}
