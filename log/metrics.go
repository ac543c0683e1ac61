package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oqtopus-team/template-engine/common"
	"go.uber.org/zap"
)

const queueLengthKeyInMetrics = "queue_length"

// QueueSizer is what the metrics logger needs from the scheduler.
type QueueSizer interface {
	GetCurrentQueueSize() int
}

// MetricsLogger periodically writes the build-queue length as JSON lines to
// a daily-rotated file.
type MetricsLogger struct {
	interval time.Duration
	dl       *dailyLogger
	queue    QueueSizer
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewMetricsLogger(fileDir string, interval time.Duration, queue QueueSizer) (*MetricsLogger, error) {
	if err := common.IsDirWritable(fileDir); err != nil {
		return nil, fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	dl := newDailyLogger(fileDir)
	slog.SetDefault(slog.New(slog.NewJSONHandler(dl, nil)))
	return &MetricsLogger{
		interval: interval,
		dl:       dl,
		queue:    queue,
		stopChan: make(chan struct{}),
	}, nil
}

func (m *MetricsLogger) Run() error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopChan:
			return nil
		case <-ticker.C:
			slog.Info(
				"Metrics",
				slog.Int(
					queueLengthKeyInMetrics,
					m.queue.GetCurrentQueueSize()),
			)
		}
	}
}

func (m *MetricsLogger) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
	if err := m.dl.Close(); err != nil {
		zap.L().Error(fmt.Sprintf("failed to close metrics log file/reason:%s", err))
	}
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
}

func newDailyLogger(fileDir string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("metrics-%s.log", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(dl.fileDir, fileName)
	currentFilePath := filepath.Join(dl.fileDir, dl.currentFileName)

	if dl.file == nil || currentFilePath != filePath {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}

	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		return dl.file.Close()
	}
	return nil
}
