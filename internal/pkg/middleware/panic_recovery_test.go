package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

func newCapturedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	encoderConfig := zap.NewDevelopmentConfig().EncoderConfig
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		setupContext func(c echo.Context)
		expectInLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"panic_type",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("test error panic"),
			expectInLogs: []string{
				"test error panic",
				"stack_trace",
				"*errors.errorString",
			},
		},
		{
			name:       "panic with caller identity",
			panicValue: "caller panic",
			setupContext: func(c echo.Context) {
				c.Set(CallerContextKey, models.CallerIdentity{
					UserID: "user-42",
					Role:   models.RoleDispatcher,
				})
			},
			expectInLogs: []string{
				"caller panic",
				"user-42",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var logBuffer bytes.Buffer
			zapLogger := newCapturedLogger(&logBuffer)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.setupContext != nil {
				tt.setupContext(c)
			}

			mw := PanicRecoveryMiddleware(zapLogger)
			handler := mw(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			// Act
			err := handler(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			logs := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logs, expected)
			}

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Internal Server Error", response["error"])
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	// Arrange
	var logBuffer bytes.Buffer
	zapLogger := newCapturedLogger(&logBuffer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := PanicRecoveryMiddleware(zapLogger)
	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Act
	err := handler(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logBuffer.String(), "Panic recovered")
}
