package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/httpstat/engine"
)

// probeDoneMsg carries the runner's outcome back into the update loop.
type probeDoneMsg struct {
	result *engine.Result
	err    error
}

// ProgressModel is a one-line spinner shown while a single probe runs.
type ProgressModel struct {
	runner engine.Runner
	url    string
	ctx    context.Context
	cancel context.CancelFunc

	spinner   spinner.Model
	state     engine.ProbeState
	start     time.Time
	elapsed   time.Duration
	canceling bool

	result *engine.Result
	err    error
}

// NewProgressModel creates the model. cancel aborts the probe's context
// when the user presses ctrl+c.
func NewProgressModel(ctx context.Context, cancel context.CancelFunc, runner engine.Runner, rawURL string) ProgressModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle
	return ProgressModel{
		runner:  runner,
		url:     rawURL,
		ctx:     ctx,
		cancel:  cancel,
		spinner: sp,
		state:   engine.ProbeIdle,
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runOnce(m.ctx, m.runner, m.url))
}

func runOnce(ctx context.Context, r engine.Runner, rawURL string) tea.Cmd {
	return func() tea.Msg {
		res, err := r.Run(ctx, rawURL)
		return probeDoneMsg{result: res, err: err}
	}
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case probeDoneMsg:
		m.state = engine.ProbeDone
		m.result, m.err = msg.result, msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && !m.canceling {
			// the runner sees the cancelled context and reports back
			m.canceling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == engine.ProbeDone {
			return m, nil
		}
		if m.start.IsZero() {
			m.start = time.Now()
		}
		m.state = engine.ProbeRunning
		m.elapsed = time.Since(m.start)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ProgressModel) View() string {
	if m.state == engine.ProbeDone {
		return ""
	}
	line := fmt.Sprintf("%s %s %s", m.spinner.View(), urlStyle.Render(m.url),
		dimStyle.Render(m.elapsed.Truncate(100*time.Millisecond).String()))
	if m.canceling {
		line += " " + warnStyle.Render("canceling")
	}
	return line + "\n"
}

// State reports where the probe is.
func (m ProgressModel) State() engine.ProbeState { return m.state }

// Result returns the probe's outcome once the model is done.
func (m ProgressModel) Result() (*engine.Result, error) { return m.result, m.err }

// RunProgress runs r for rawURL while drawing the spinner on out. It
// returns once the probe has finished.
func RunProgress(ctx context.Context, r engine.Runner, rawURL string, out io.Writer, opts ...tea.ProgramOption) (*engine.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithOutput(out)}, opts...)
	p := tea.NewProgram(NewProgressModel(ctx, cancel, r, rawURL), opts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("progress view: %w", err)
	}
	m, ok := final.(ProgressModel)
	if !ok {
		return nil, fmt.Errorf("progress view: unexpected model %T", final)
	}
	return m.Result()
}
