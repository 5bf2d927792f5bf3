package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/ftahirops/httpstat/model"
)

// ErrReservedOption is returned when a user option collides with one the
// collector sets itself.
var ErrReservedOption = errors.New("option is managed by httpstat")

// waitDelay bounds how long Fetch waits for output pipes after curl is
// killed by a cancelled context.
const waitDelay = 2 * time.Second

// reservedOptions are set on every invocation and cannot be overridden.
var reservedOptions = []string{
	"-w", "--write-out",
	"-D", "--dump-header",
	"-o", "--output",
	"-s", "--silent",
}

// ExitError reports a curl process that ran but failed.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("curl exited with status %d", e.Code)
	}
	return fmt.Sprintf("curl exited with status %d: %s", e.Code, msg)
}

// Curl runs the curl binary once per Fetch.
type Curl struct {
	Bin     string
	Args    []string
	TempDir string // "" = os.TempDir()
}

// NewCurl validates the user options and returns a ready collector.
func NewCurl(bin string, args []string) (*Curl, error) {
	if bin == "" {
		bin = "curl"
	}
	for _, a := range args {
		if isReserved(a) {
			return nil, fmt.Errorf("%s: %w", a, ErrReservedOption)
		}
	}
	return &Curl{Bin: bin, Args: append([]string(nil), args...)}, nil
}

func isReserved(arg string) bool {
	for _, r := range reservedOptions {
		if arg == r || (strings.HasPrefix(r, "--") && strings.HasPrefix(arg, r+"=")) {
			return true
		}
	}
	return false
}

// Name implements Transfer.
func (c *Curl) Name() string { return "curl" }

// WriteOut is the -w template: one "label:value" line per metric.
func WriteOut() string {
	var b strings.Builder
	for _, l := range model.RequiredLabels {
		fmt.Fprintf(&b, "%s:%%{%s}\n", l, l)
	}
	for _, l := range model.OptionalLabels {
		fmt.Fprintf(&b, "%s:%%{%s}\n", l, l)
	}
	return b.String()
}

// CommandArgs returns the full argument list for one run.
func (c *Curl) CommandArgs(rawURL, headerPath, bodyPath string) []string {
	args := []string{
		"-w", WriteOut(),
		"-D", headerPath,
		"-o", bodyPath,
		"-s", "-S",
	}
	args = append(args, c.Args...)
	return append(args, rawURL)
}

// Fetch runs curl against rawURL. The returned exchange owns two temp files;
// release them with Cleanup.
func (c *Curl) Fetch(ctx context.Context, rawURL string) (*model.Exchange, error) {
	hdr, err := tempPath(c.TempDir, "httpstat-header-")
	if err != nil {
		return nil, err
	}
	body, err := tempPath(c.TempDir, "httpstat-body-")
	if err != nil {
		os.Remove(hdr)
		return nil, err
	}
	ex := &model.Exchange{
		URL:        rawURL,
		Scheme:     model.SchemeOf(rawURL),
		HeaderPath: hdr,
		BodyPath:   body,
	}

	cmd := exec.CommandContext(ctx, c.Bin, c.CommandArgs(rawURL, hdr, body)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		Cleanup(ex, false)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("curl %s: %w", rawURL, ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return nil, fmt.Errorf("run %s: %w", c.Bin, err)
	}

	ex.Metrics = stdout.String()
	return ex, nil
}

func tempPath(dir, pattern string) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return name, nil
}

// Cleanup removes the exchange's temp files. The body file survives when
// keepBody is set.
func Cleanup(ex *model.Exchange, keepBody bool) error {
	if ex == nil {
		return nil
	}
	var err error
	err = multierr.Append(err, removeIfExists(ex.HeaderPath))
	if !keepBody {
		err = multierr.Append(err, removeIfExists(ex.BodyPath))
	}
	return err
}

func removeIfExists(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
