package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type bindTestRequest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	MinAge *int   `json:"min_age"`
}

func Test_bindRequest_query(t *testing.T) {
	r := httptest.NewRequest("GET", "/users?name=john&age=30&min_age=25", nil)

	var req bindTestRequest
	require.NoError(t, bindRequest(r, &req))
	require.Equal(t, "john", req.Name)
	require.Equal(t, 30, req.Age)
	require.NotNil(t, req.MinAge)
	require.Equal(t, 25, *req.MinAge)
}

func Test_bindRequest_absentOptionalStaysNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/users?name=john", nil)

	var req bindTestRequest
	require.NoError(t, bindRequest(r, &req))
	require.Nil(t, req.MinAge)
	require.Zero(t, req.Age)
}

func Test_bindRequest_pathValueWinsOverBody(t *testing.T) {
	r := httptest.NewRequest("PUT", "/users/7", strings.NewReader(`{"id": 999, "name": "john"}`))
	r.SetPathValue("id", "7")

	var req bindTestRequest
	require.NoError(t, bindRequest(r, &req))
	require.Equal(t, int64(7), req.ID)
	require.Equal(t, "john", req.Name)
}

func Test_bindRequest_emptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/users", nil)

	var req bindTestRequest
	require.NoError(t, bindRequest(r, &req))
	require.Zero(t, req)
}

func Test_bindRequest_malformedBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/users", strings.NewReader("{not json"))

	var req bindTestRequest
	err := bindRequest(r, &req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Cannot parse the request body")
}

func Test_bindRequest_invalidInteger(t *testing.T) {
	r := httptest.NewRequest("GET", "/users?age=abc", nil)

	var req bindTestRequest
	err := bindRequest(r, &req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid value for age")
}
