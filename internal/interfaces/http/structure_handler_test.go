package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeops/temple-stock-api/internal/application/dto"
)

func TestStructureEndpointsRoundTrip(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/structures/", map[string]any{
		"name": "Main Kitchen",
		"kind": "kitchen",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.StructureResponse
	decodeInto(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Main Kitchen", created.Name)
	assert.Equal(t, "main", created.TempleID, "scoped by the default temple header")

	getResp := doJSON(t, app, http.MethodGet, "/api/structures/"+created.ID, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var got dto.StructureResponse
	decodeInto(t, getResp, &got)
	assert.Equal(t, created.ID, got.ID)

	listResp := doJSON(t, app, http.MethodGet, "/api/structures/", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list dto.StructureListResponse
	decodeInto(t, listResp, &list)
	require.Len(t, list.Structures, 1)
	assert.Equal(t, "Main Kitchen", list.Structures[0].Name)
}

func TestStructureEndpointValidation(t *testing.T) {
	app, _ := buildTestApp(t)

	t.Run("missing name", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/structures/", map[string]any{"kind": "shrine"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body dto.ErrorResponse
		decodeInto(t, resp, &body)
		assert.Contains(t, body.Fields, "name")
	})
	t.Run("duplicate name", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/structures/", map[string]any{"name": "Store Room"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp = doJSON(t, app, http.MethodPost, "/api/structures/", map[string]any{"name": "store room"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode, "name uniqueness is case-insensitive per temple")
	})
	t.Run("unknown id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/structures/ghost", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
