package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo(t *testing.T) {
	t.Run("Default build info structure", func(t *testing.T) {
		assert.Equal(t, "development", DefaultBuildInfo.Version)
		assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
		assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
		assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
		assert.Empty(t, DefaultBuildInfo.ServiceName)
		assert.True(t, DefaultBuildInfo.ServerTime.IsZero())
	})
}

func TestNewPingHandler(t *testing.T) {
	// Save and clear build metadata env vars for the duration of the test
	originalEnv := make(map[string]string)
	envVars := []string{"VERSION", "GIT_COMMIT", "BUILD_TIME"}

	for _, envVar := range envVars {
		if val, exists := os.LookupEnv(envVar); exists {
			originalEnv[envVar] = val
		}
		os.Unsetenv(envVar)
	}

	defer func() {
		for _, envVar := range envVars {
			os.Unsetenv(envVar)
			if val, exists := originalEnv[envVar]; exists {
				os.Setenv(envVar, val)
			}
		}
	}()

	t.Run("Default ping handler", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("test-service")
		err := handler(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response BuildInfo
		err = json.Unmarshal(rec.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "test-service", response.ServiceName)
		assert.Equal(t, "development", response.Version)
		assert.Equal(t, "unknown", response.GitCommit)
		assert.Equal(t, runtime.Version(), response.GoVersion)
		assert.NotEmpty(t, response.Hostname)
		assert.False(t, response.ServerTime.IsZero())
	})

	t.Run("Ping handler with environment variables", func(t *testing.T) {
		os.Setenv("VERSION", "2.0.0")
		os.Setenv("GIT_COMMIT", "def456")
		os.Setenv("BUILD_TIME", "2023-06-01T12:00:00Z")
		defer func() {
			os.Unsetenv("VERSION")
			os.Unsetenv("GIT_COMMIT")
			os.Unsetenv("BUILD_TIME")
		}()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("prod-service")
		err := handler(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response BuildInfo
		err = json.Unmarshal(rec.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "prod-service", response.ServiceName)
		assert.Equal(t, "2.0.0", response.Version)
		assert.Equal(t, "def456", response.GitCommit)
		assert.Equal(t, "2023-06-01T12:00:00Z", response.BuildTime)
	})

	t.Run("Multiple calls return updated server time", func(t *testing.T) {
		e := echo.New()
		handler := NewPingHandler("time-test-service")

		req1 := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec1 := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req1, rec1)))

		var response1 BuildInfo
		require.NoError(t, json.Unmarshal(rec1.Body.Bytes(), &response1))

		time.Sleep(10 * time.Millisecond)

		req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec2 := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req2, rec2)))

		var response2 BuildInfo
		require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &response2))

		assert.True(t, response2.ServerTime.After(response1.ServerTime))
		assert.Equal(t, response1.ServiceName, response2.ServiceName)
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	t.Run("Register all health endpoints", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "health-test-service")

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var buildInfo BuildInfo
		err := json.Unmarshal(rec.Body.Bytes(), &buildInfo)
		assert.NoError(t, err)
		assert.Equal(t, "health-test-service", buildInfo.ServiceName)

		for _, endpoint := range []string{"/health", "/healthz", "/ready"} {
			req = httptest.NewRequest(http.MethodGet, endpoint, nil)
			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "OK", rec.Body.String())
		}
	})

	t.Run("Health endpoints reject other HTTP methods", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "method-test-service")

		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
