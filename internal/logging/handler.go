package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// palette holds the colors used by Handler. A nil palette means plain output.
type palette struct {
	time  *color.Color
	key   *color.Color
	trace *color.Color
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
}

func newPalette() *palette {
	return &palette{
		time:  color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		trace: color.New(color.FgHiBlack),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
	}
}

// Handler is the slog.Handler behind romshelf's text logs. A line reads
//
//	3:04PM DEBUG system loaded system=wii path=/mnt/roms/wbfs
//
// Keys of grouped attributes are joined with dots, so a record logged
// through WithGroup("archive") carries keys such as archive.root.
// Colors are used only when the writer supports them.
type Handler struct {
	opts slog.HandlerOptions
	out  io.Writer
	mu   *sync.Mutex
	pal  *palette

	// prefix is the group path applied to record attributes.
	prefix string
	// preformatted holds attributes added through WithAttrs, already rendered.
	preformatted []byte
}

// NewHandler returns a Handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}
	if SupportsColor(out) {
		h.pal = newPalette()
	}
	return h
}

// Enabled reports whether level is at or above the configured minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle renders r as a single line and writes it in one call.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		buf.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		buf.WriteByte(' ')
	}

	label := levelLabel(r.Level)
	buf.WriteString(h.paint(h.levelColor(r.Level), label))
	if pad := 5 - len(label); pad > 0 {
		buf.WriteString(strings.Repeat(" ", pad))
	}
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	buf.Write(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

// WithAttrs returns a Handler that renders attrs on every line.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	buf.Write(h.preformatted)
	for _, a := range attrs {
		h.appendAttr(&buf, h.prefix, a)
	}
	newH := *h
	newH.preformatted = buf.Bytes()
	return &newH
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = h.prefix + name + "."
	return &newH
}

// appendAttr writes " key=value" to buf. Group values are flattened into
// one pair per member.
func (h *Handler) appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, m := range members {
			h.appendAttr(buf, prefix, m)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.paint(h.keyColor(), prefix+a.Key))
	buf.WriteByte('=')
	buf.WriteString(formatValue(a.Value))
}

// formatValue renders v, quoting text that would break key=value parsing.
func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().Format(time.RFC3339)
	case slog.KindString:
		s = v.String()
		if s == "" {
			return `""`
		}
	default:
		s = v.String()
	}
	if strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// levelLabel names a level, using TRACE for LevelTrace and below.
func levelLabel(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) timeColor() *color.Color {
	if h.pal == nil {
		return nil
	}
	return h.pal.time
}

func (h *Handler) keyColor() *color.Color {
	if h.pal == nil {
		return nil
	}
	return h.pal.key
}

func (h *Handler) levelColor(l slog.Level) *color.Color {
	if h.pal == nil {
		return nil
	}
	switch {
	case l >= slog.LevelError:
		return h.pal.err
	case l >= slog.LevelWarn:
		return h.pal.warn
	case l >= slog.LevelInfo:
		return h.pal.info
	case l > LevelTrace:
		return h.pal.debug
	default:
		return h.pal.trace
	}
}
