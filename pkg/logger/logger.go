package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware writes to
const RequestIDKey = "request_id"

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance writing to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout, os.Getenv("LOG_LEVEL"))
}

// NewWithWriter creates a logger writing to w at the given level
func NewWithWriter(w io.Writer, levelStr string) *Logger {
	level := getLogLevel(levelStr)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text in debug mode (readable), JSON otherwise (structured)
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("request_id", c.GetString(RequestIDKey)),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("request_id", c.GetString(RequestIDKey)),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// Listing logging methods

// LogVenueCreated logs when a venue is listed
func (l *Logger) LogVenueCreated(ctx context.Context, venueID uint, name string) {
	l.Logger.InfoContext(ctx,
		"Venue Created",
		slog.Uint64("venue_id", uint64(venueID)),
		slog.String("name", name),
	)
}

// LogVenueUpdated logs when a venue is overwritten from the edit form
func (l *Logger) LogVenueUpdated(ctx context.Context, venueID uint, name string) {
	l.Logger.InfoContext(ctx,
		"Venue Updated",
		slog.Uint64("venue_id", uint64(venueID)),
		slog.String("name", name),
	)
}

// LogVenueDeleted logs when a venue and its shows are removed
func (l *Logger) LogVenueDeleted(ctx context.Context, venueID uint, name string, showsRemoved int64) {
	l.Logger.InfoContext(ctx,
		"Venue Deleted",
		slog.Uint64("venue_id", uint64(venueID)),
		slog.String("name", name),
		slog.Int64("shows_removed", showsRemoved),
	)
}

// LogArtistCreated logs when an artist is listed
func (l *Logger) LogArtistCreated(ctx context.Context, artistID uint, name string) {
	l.Logger.InfoContext(ctx,
		"Artist Created",
		slog.Uint64("artist_id", uint64(artistID)),
		slog.String("name", name),
	)
}

// LogArtistUpdated logs when an artist is overwritten from the edit form
func (l *Logger) LogArtistUpdated(ctx context.Context, artistID uint, name string) {
	l.Logger.InfoContext(ctx,
		"Artist Updated",
		slog.Uint64("artist_id", uint64(artistID)),
		slog.String("name", name),
	)
}

// LogShowCreated logs when a show is booked
func (l *Logger) LogShowCreated(ctx context.Context, showID, venueID, artistID uint, startTime time.Time) {
	l.Logger.InfoContext(ctx,
		"Show Created",
		slog.Uint64("show_id", uint64(showID)),
		slog.Uint64("venue_id", uint64(venueID)),
		slog.Uint64("artist_id", uint64(artistID)),
		slog.Time("start_time", startTime),
	)
}

// Security logging methods

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Helper methods for common patterns

// InfoWithContext logs an info message with context
func (l *Logger) InfoWithContext(ctx context.Context, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.InfoContext(ctx, msg, args...)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
