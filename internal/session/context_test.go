package session

import (
	"auction-house/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{name: "lowercase_scheme", header: "bearer abc", wantToken: "abc", wantOK: true},
		{name: "missing", header: ""},
		{name: "wrong_scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty_token", header: "Bearer   "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}

			token, ok := BearerToken(c)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantToken, token)
		})
	}
}

func TestSetUser_UserFrom(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserFrom(c)
	require.False(t, ok)

	SetUser(c, models.User{ID: "123456", Name: "demo"})
	got, ok := UserFrom(c)
	require.True(t, ok)
	require.Equal(t, "123456", got.ID)
}
