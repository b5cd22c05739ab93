package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cacheline/cacheline/pkg/cache"
	"github.com/cacheline/cacheline/pkg/logger"
)

const defaultMaxLineBytes = 1 << 20

// Session processes one command stream against at most one cache instance.
// The cache is created by the first INIT; a later INIT replaces it
// unconditionally. Sessions are single-threaded: commands execute strictly
// in arrival order.
type Session struct {
	cache        *cache.LRUCache[string, string]
	log          *slog.Logger
	maxLineBytes int
	id           string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostic logger. Responses never go through it;
// stdout stays reserved for the protocol.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMaxLineBytes caps the length of a single input line. Non-positive
// values are ignored.
func WithMaxLineBytes(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxLineBytes = n
		}
	}
}

// NewSession creates an uninitialized session. No cache exists until the
// first INIT command arrives.
func NewSession(opts ...Option) *Session {
	s := &Session{
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxLineBytes: defaultMaxLineBytes,
		id:           uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.SessionID(s.id))
	return s
}

// Run reads newline-separated commands from r until EOF or context
// cancellation, writing exactly one response line per non-blank input line
// to w. Protocol errors are reported on the wire and never terminate the
// loop; only a read failure or cancellation does.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Scanner takes the larger of the initial buffer and the cap, so the
	// initial allocation must not exceed the configured line limit.
	bufSize := 64 * 1024
	if s.maxLineBytes < bufSize {
		bufSize = s.maxLineBytes
	}
	scanner.Buffer(make([]byte, bufSize), s.maxLineBytes)
	out := bufio.NewWriter(w)

	s.log.InfoContext(ctx, "session started")

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, err := fmt.Fprintln(out, s.Execute(line)); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		// Flush per command so interactive callers see responses immediately.
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command stream: %w", err)
	}

	s.log.InfoContext(ctx, "session finished")
	return nil
}

// Execute runs a single trimmed, non-blank command line and returns the
// response line, without the trailing newline.
func (s *Session) Execute(line string) string {
	cmd, err := Parse(line)
	if err != nil {
		// The init check outranks argument validation: a malformed PUT or
		// GET on an uninitialized session reports the missing cache, not
		// the missing argument.
		var missing *MissingArgumentError
		if errors.As(err, &missing) && missing.Verb != VerbInit && s.cache == nil {
			s.log.Debug("command before INIT", slog.String("verb", string(missing.Verb)))
			return errorResponse(ErrNotInitialized)
		}
		s.log.Debug("rejected command", logger.Error(err))
		return errorResponse(err)
	}

	if cmd.Verb != VerbInit && s.cache == nil {
		s.log.Debug("command before INIT", slog.String("verb", string(cmd.Verb)))
		return errorResponse(ErrNotInitialized)
	}

	switch cmd.Verb {
	case VerbInit:
		return s.execInit(cmd.Capacity)
	case VerbPut:
		s.cache.Put(cmd.Key, cmd.Value)
		return "OK"
	case VerbGet:
		value, ok := s.cache.Get(cmd.Key)
		if !ok {
			return "NULL"
		}
		return value
	case VerbSize:
		return strconv.Itoa(s.cache.Len())
	default:
		// Parse only yields the verbs above.
		return errorResponse(&UnknownCommandError{Token: string(cmd.Verb)})
	}
}

// Initialized reports whether the session holds a cache.
func (s *Session) Initialized() bool {
	return s.cache != nil
}

func (s *Session) execInit(capacity int) string {
	c, err := cache.New[string, string](capacity)
	if err != nil {
		// Parse already validated the capacity, so this is unreachable on
		// the wire path; keep the session alive regardless.
		return errorResponse(&InvalidCapacityError{Reason: "must be positive"})
	}

	if s.cache != nil {
		s.log.Info("cache replaced", logger.Capacity(capacity))
	} else {
		s.log.Info("cache initialized", logger.Capacity(capacity))
	}

	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		c.SetEvictCallback(func(key, _ string) {
			s.log.Debug("evicted entry", logger.Key(key))
		})
	}

	s.cache = c
	return "OK"
}

// errorResponse renders an error in the wire format the protocol promises.
func errorResponse(err error) string {
	var unknown *UnknownCommandError
	if errors.As(err, &unknown) {
		return "ERROR: Unknown command: " + unknown.Token
	}

	var missing *MissingArgumentError
	if errors.As(err, &missing) {
		switch missing.Verb {
		case VerbInit:
			return "ERROR: INIT requires capacity argument"
		case VerbPut:
			return "ERROR: PUT requires key and value"
		default:
			return "ERROR: GET requires key"
		}
	}

	var capErr *InvalidCapacityError
	if errors.As(err, &capErr) {
		return "ERROR: Invalid capacity: " + capErr.Reason
	}

	if errors.Is(err, ErrNotInitialized) {
		return "ERROR: Cache not initialized"
	}

	return "ERROR: " + err.Error()
}
