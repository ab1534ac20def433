package logger

import (
	"context"
	"fmt"
	"time"

	"go-hms/internal/config"
	"go-hms/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	IP      string
	ActorID string
	Caller  string
}

// LogRecord is the persisted shape in the "logs" collection
type LogRecord struct {
	Message   string    `bson:"message"`
	IP        string    `bson:"ip,omitempty"`
	ActorID   string    `bson:"actor_id,omitempty"`
	Caller    string    `bson:"caller,omitempty"`
	Level     string    `bson:"level"`
	AppID     string    `bson:"app_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	appId   string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000),
		appId:   cfg.AppId,
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap core; it must never block a request
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop the log rather than stall the API
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		record := LogRecord{
			Message:   entry.Message,
			IP:        entry.IP,
			ActorID:   entry.ActorID,
			Caller:    entry.Caller,
			Level:     entry.Level.String(),
			AppID:     w.appId,
			CreatedAt: time.Now().UTC(),
		}

		// Insert errors are swallowed to keep the app running
		w.db.Collection("logs").InsertOne(context.Background(), record)
	}
}
