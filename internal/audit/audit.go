package audit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/lumberjack"

	"github.com/uniquers/landing/internal/models"
)

// Entry is one fallback-captured lead. Ref lets support staff point at a
// specific degraded submission when replaying the log into the database.
type Entry struct {
	Ref        string            `json:"ref"`
	ReceivedAt time.Time         `json:"received_at"`
	Lead       models.Subscriber `json:"lead"`
}

// Log is the durable fallback channel for submissions that could not reach
// the primary store. One JSON object per line; rotation and retention are
// handled by Lumberjack so no external log-rotate job is required.
type Log struct {
	mu  sync.Mutex
	out *lumberjack.Logger
}

func New(path string) *Log {
	return &Log{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 10,
			MaxAge:     90, // days; leads go stale, the log need not outlive them
			Compress:   true,
		},
	}
}

// Record appends the lead to the audit log and returns its reference ID.
func (l *Log) Record(sub *models.Subscriber) (string, error) {
	e := Entry{
		Ref:        uuid.NewString(),
		ReceivedAt: time.Now().UTC(),
		Lead:       *sub,
	}
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	b = append(b, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.out.Write(b); err != nil {
		return "", err
	}
	return e.Ref, nil
}

func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Close()
}
