package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/httpstat/model"
)

const okMetrics = "time_namelookup:0.010\n" +
	"time_connect:0.020\n" +
	"time_appconnect:0.050\n" +
	"time_pretransfer:0.051\n" +
	"time_starttransfer:0.100\n" +
	"time_total:0.150\n"

// fakeTransfer hands out a prepared exchange backed by real temp files.
type fakeTransfer struct {
	metrics string
	headers string
	err     error
	dir     string
	calls   int
	state   func() ProbeState
	seen    ProbeState
}

func (f *fakeTransfer) Name() string { return "fake" }

func (f *fakeTransfer) Fetch(ctx context.Context, rawURL string) (*model.Exchange, error) {
	f.calls++
	if f.state != nil {
		f.seen = f.state()
	}
	if f.err != nil {
		return nil, f.err
	}
	hdr := filepath.Join(f.dir, "hdr")
	body := filepath.Join(f.dir, "body")
	if err := os.WriteFile(hdr, []byte(f.headers), 0o600); err != nil {
		return nil, err
	}
	if err := os.WriteFile(body, []byte("ok"), 0o600); err != nil {
		return nil, err
	}
	return &model.Exchange{
		URL:        rawURL,
		Scheme:     model.SchemeOf(rawURL),
		Metrics:    f.metrics,
		HeaderPath: hdr,
		BodyPath:   body,
	}, nil
}

func newFake(t *testing.T, metrics string) *fakeTransfer {
	return &fakeTransfer{metrics: metrics, headers: "HTTP/1.1 200 OK\r\nServer: test\r\n\r\n", dir: t.TempDir()}
}

func TestProbeRun(t *testing.T) {
	ft := newFake(t, okMetrics)
	p := NewProbe(ft, zerolog.Nop())
	ft.state = p.State
	assert.Equal(t, ProbeIdle, p.State())

	res, err := p.Run(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, ProbeRunning, ft.seen)
	assert.Equal(t, ProbeDone, p.State())
	assert.Equal(t, "https", res.Exchange.Scheme)
	assert.Equal(t, int64(10), res.Timing.DNS())
	assert.Equal(t, int64(50), res.Timing.ContentTransfer())
	require.NotNil(t, res.Response)
	assert.Equal(t, "200 OK", res.Response.Status)
	assert.FileExists(t, res.Exchange.BodyPath)
}

func TestProbeRunFetchError(t *testing.T) {
	boom := errors.New("boom")
	ft := newFake(t, okMetrics)
	ft.err = boom

	_, err := NewProbe(ft, zerolog.Nop()).Run(context.Background(), "http://x")
	assert.ErrorIs(t, err, boom)
}

func TestProbeRunMalformedMetrics(t *testing.T) {
	ft := newFake(t, "garbage\n"+okMetrics)

	_, err := NewProbe(ft, zerolog.Nop()).Run(context.Background(), "http://x")
	assert.ErrorIs(t, err, model.ErrMalformedMetricLine)
	assert.NoFileExists(t, filepath.Join(ft.dir, "hdr"))
	assert.NoFileExists(t, filepath.Join(ft.dir, "body"))
}

func TestProbeRunMissingPhase(t *testing.T) {
	ft := newFake(t, "time_namelookup:0.1\ntime_total:0.2\n")

	_, err := NewProbe(ft, zerolog.Nop()).Run(context.Background(), "http://x")
	require.ErrorIs(t, err, model.ErrMissingRequiredPhase)
	assert.Contains(t, err.Error(), "time_connect")
	assert.Contains(t, err.Error(), "time_starttransfer")
	assert.NoFileExists(t, filepath.Join(ft.dir, "body"))
}

func TestProbeRunLogsAnomalies(t *testing.T) {
	metrics := "time_namelookup:0.5\ntime_connect:0.2\ntime_appconnect:x\n" +
		"time_pretransfer:0.3\ntime_starttransfer:0.4\ntime_total:0.6\n"
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	res, err := NewProbe(newFake(t, metrics), log).Run(context.Background(), "http://x")
	require.NoError(t, err)
	assert.Equal(t, int64(-300), res.Timing.TCPConnect())

	out := buf.String()
	assert.Contains(t, out, `"label":"time_appconnect"`)
	assert.Contains(t, out, `"phase":"tcp_connect"`)
	assert.Contains(t, out, `"ms":-300`)
}

func TestProbeRunUnreadableHeaders(t *testing.T) {
	ft := newFake(t, okMetrics)
	p := NewProbe(transferFunc(func(ctx context.Context, u string) (*model.Exchange, error) {
		ex, err := ft.Fetch(ctx, u)
		if err == nil {
			ex.HeaderPath = filepath.Join(ft.dir, "missing")
		}
		return ex, err
	}), zerolog.Nop())

	res, err := p.Run(context.Background(), "http://x")
	require.NoError(t, err)
	assert.Nil(t, res.Response)
}

func TestRunnerFunc(t *testing.T) {
	want := &Result{}
	var r Runner = RunnerFunc(func(ctx context.Context, u string) (*Result, error) { return want, nil })

	got, err := r.Run(context.Background(), "http://x")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestProbeStateString(t *testing.T) {
	assert.Equal(t, "idle", ProbeIdle.String())
	assert.Equal(t, "running", ProbeRunning.String())
	assert.Equal(t, "done", ProbeDone.String())
	assert.Equal(t, "unknown", ProbeState(9).String())
}

type transferFunc func(ctx context.Context, rawURL string) (*model.Exchange, error)

func (f transferFunc) Name() string { return "func" }

func (f transferFunc) Fetch(ctx context.Context, rawURL string) (*model.Exchange, error) {
	return f(ctx, rawURL)
}
