//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"mynbala-backend/internal/handler/httperr"
	"mynbala-backend/internal/handler/middleware"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/cookie"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/", handlers...)
	return r
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "public error is returned as is",
			handler: func(c *gin.Context) {
				resp := httperr.Response{Status: http.StatusConflict}
				resp.Error.Message = "Funnel is closed"
				_ = c.Error(&gin.Error{Err: errs.New("closed"), Type: gin.ErrorTypePublic, Meta: resp})
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "Funnel is closed",
		},
		{
			name: "private categorized error maps to its status",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.Category("cabin not found", errs.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not Found",
		},
		{
			name: "uncategorized error is internal",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, newEngine(tt.handler), http.MethodGet, "/", nil, "")
			httptest.AssertErrorResponse(t, w, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestErrorHandler_WrittenResponseIsKept(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"state": "ready"})
		_ = c.Error(errs.New("logged only"))
	})

	w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"ready"}`, w.Body.String())
}

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session(config.CookieConfig{SameSite: "Lax"}))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetSessionID(c))
	})

	t.Run("issues a cookie for a new visitor", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")

		c := httptest.SessionCookie(w)
		require.NotNil(t, c)
		assert.True(t, c.HttpOnly)
		assert.Zero(t, c.MaxAge)
		assert.Equal(t, c.Value, w.Body.String())
		_, err := uuid.Parse(c.Value)
		assert.NoError(t, err)
	})

	t.Run("keeps an existing session", func(t *testing.T) {
		id := uuid.NewString()
		w := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: id}}, "")

		assert.Nil(t, httptest.SessionCookie(w))
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("replaces a malformed session id", func(t *testing.T) {
		w := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "../../etc"}}, "")

		c := httptest.SessionCookie(w)
		require.NotNil(t, c)
		assert.NotEqual(t, "../../etc", c.Value)
	})
}
