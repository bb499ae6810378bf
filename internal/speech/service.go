package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/groq_cli/internal/ports"
)

const DefaultModel = "whisper-large-v3"

var ErrAudioNotFound = errors.New("audio file not found")

// Config holds the transcription options collected from the command line.
type Config struct {
	AudioFile   string
	Language    string
	Format      ports.ResponseFormat
	Temperature float32
	Model       string
}

type Service struct {
	stt ports.Transcriber
	log *logger.ZapLogger

	stat func(name string) (os.FileInfo, error)
	open func(name string) (io.ReadCloser, error)
}

func NewService(stt ports.Transcriber, log *logger.ZapLogger) *Service {
	return &Service{
		stt:  stt,
		log:  log,
		stat: os.Stat,
		open: func(name string) (io.ReadCloser, error) { return os.Open(name) },
	}
}

// CheckAudio fails unless path names an existing regular file.
func (s *Service) CheckAudio(path string) error {
	info, err := s.stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %q", ErrAudioNotFound, path)
	}
	return nil
}

// Transcribe checks the audio file, then sends it in one request.
// The file is closed on every return path.
func (s *Service) Transcribe(ctx context.Context, cfg Config) (ports.Transcript, error) {
	if err := s.CheckAudio(cfg.AudioFile); err != nil {
		return ports.Transcript{}, err
	}

	f, err := s.open(cfg.AudioFile)
	if err != nil {
		return ports.Transcript{}, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	format := cfg.Format
	if format == "" {
		format = ports.FormatText
	}

	start := time.Now()
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[speech] >>> START model=%s format=%s file=%s", model, format, cfg.AudioFile),
		Service: "transcribe",
	})

	tr, err := s.stt.Transcribe(ctx, ports.TranscriptionRequest{
		Model:       model,
		Audio:       f,
		FileName:    filepath.Base(cfg.AudioFile),
		Language:    cfg.Language,
		Format:      format,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: fmt.Sprintf("[speech][%.1fs] request failed", time.Since(start).Seconds()),
			Service: "transcribe",
			Error:   err,
		})
		return ports.Transcript{}, fmt.Errorf("transcription request: %w", err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[speech][%.1fs] done", time.Since(start).Seconds()),
		Service: "transcribe",
	})
	return tr, nil
}
