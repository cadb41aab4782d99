package node

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/pkg/stdcopy"
	log "github.com/sirupsen/logrus"
)

const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

const maxLogLine = 1024 * 1024

// LogRecord is one line of container output.
type LogRecord struct {
	Stream  string
	Message string
}

// LogStream reads records from an attach session. Records are produced lazily
// until the session ends; a closed stream cannot be restarted.
type LogStream struct {
	resp      types.HijackedResponse
	records   chan LogRecord
	done      chan struct{}
	err       error
	closeOnce sync.Once
}

func newLogStream(resp types.HijackedResponse) *LogStream {
	s := &LogStream{
		resp:    resp,
		records: make(chan LogRecord),
		done:    make(chan struct{}),
	}
	go s.demux()
	return s
}

func (s *LogStream) demux() {
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()

	var (
		wg      sync.WaitGroup
		scanErr = make([]error, 2)
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanErr[0] = s.scan(StreamStdout, stdoutR)
	}()
	go func() {
		defer wg.Done()
		scanErr[1] = s.scan(StreamStderr, stderrR)
	}()

	_, err := stdcopy.StdCopy(stdoutW, stderrW, s.resp.Reader)
	stdoutW.CloseWithError(err)
	stderrW.CloseWithError(err)
	wg.Wait()

	if err == nil {
		err = errors.Join(scanErr...)
	}
	s.err = err
	close(s.records)
}

func (s *LogStream) scan(stream string, r *io.PipeReader) error {
	defer r.Close()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)
	for scanner.Scan() {
		select {
		case s.records <- LogRecord{Stream: stream, Message: scanner.Text()}:
		case <-s.done:
			return nil
		}
	}
	return scanner.Err()
}

// Next returns the next record. It returns io.EOF once the session has ended
// cleanly, or the error that ended it.
func (s *LogStream) Next(ctx context.Context) (LogRecord, error) {
	select {
	case <-ctx.Done():
		return LogRecord{}, ctx.Err()
	case rec, ok := <-s.records:
		if !ok {
			select {
			case <-s.done:
				// Errors caused by Close are not reported.
				return LogRecord{}, io.EOF
			default:
			}
			if s.err != nil {
				return LogRecord{}, s.err
			}
			return LogRecord{}, io.EOF
		}
		return rec, nil
	}
}

// Forward writes every record to logger until the stream ends or ctx is
// done. Stderr lines are logged as warnings.
func (s *LogStream) Forward(ctx context.Context, logger *log.Entry) error {
	for {
		rec, err := s.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		entry := logger.WithField("stream", rec.Stream)
		if rec.Stream == StreamStderr {
			entry.Warn(rec.Message)
		} else {
			entry.Info(rec.Message)
		}
	}
}

// Close ends the attach session. It is safe to call more than once.
func (s *LogStream) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.resp.Conn != nil {
			s.resp.Close()
		}
	})
}
