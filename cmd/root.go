package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ftahirops/httpstat/collector"
	"github.com/ftahirops/httpstat/config"
	"github.com/ftahirops/httpstat/engine"
	"github.com/ftahirops/httpstat/logging"
	"github.com/ftahirops/httpstat/ui"
)

// Set at build time via ldflags.
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const longHelp = `httpstat runs curl once against URL and draws how long each phase of the
request took: DNS lookup, TCP connect, TLS handshake, server processing and
content transfer.

Everything after URL is handed to curl unchanged, except the options
httpstat sets itself (-w, -D, -o, -s).

Configuration is read from $XDG_CONFIG_HOME/httpstat/config.yaml and
HTTPSTAT_* environment variables; flags take precedence.`

// Run is the program entry point.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree writing the report to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "httpstat [flags] URL [CURL_OPTIONS...]",
		Short:         "Visualize curl timing statistics",
		Long:          longHelp,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0], args[1:], stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.Flags()
	f.SetInterspersed(false)
	f.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/httpstat/config.yaml)")
	f.String("curl-bin", "curl", "curl executable")
	f.Bool("show-body", false, "print the start of the response body")
	f.Int("body-preview-bytes", 1024, "bytes of body shown by --show-body")
	f.Bool("save-body", true, "keep the response body in a temp file")
	f.Bool("show-speed", false, "print download and upload speed")
	f.Bool("progress", false, "show a spinner on stderr while the request runs")
	f.Duration("timeout", 0, "abort the transfer after this long (0 = no limit)")
	f.String("log-level", "warn", "log level: debug, info, warn, error")

	for key, name := range map[string]string{
		"curl_bin":           "curl-bin",
		"show_body":          "show-body",
		"body_preview_bytes": "body-preview-bytes",
		"save_body":          "save-body",
		"show_speed":         "show-speed",
		"progress":           "progress",
		"timeout":            "timeout",
		"log_level":          "log-level",
	} {
		_ = v.BindPFlag(key, f.Lookup(name))
	}

	root.AddCommand(newVersionCmd())
	return root
}

func run(ctx context.Context, cfg config.Config, rawURL string, curlArgs []string, stdout, stderr io.Writer) error {
	log := logging.New(cfg.LogLevel, stderr)

	curl, err := collector.NewCurl(cfg.CurlBin, curlArgs)
	if err != nil {
		return err
	}
	log.Debug().Str("bin", curl.Bin).Strs("args", curl.Args).Str("url", rawURL).Msg("curl")

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	probe := engine.NewProbe(curl, log)
	var res *engine.Result
	if cfg.Progress {
		res, err = ui.RunProgress(ctx, probe, rawURL, stderr)
	} else {
		res, err = probe.Run(ctx, rawURL)
	}
	if err != nil {
		return err
	}

	keepBody := cfg.SaveBody && !cfg.ShowBody
	defer func() {
		if err := collector.Cleanup(res.Exchange, keepBody); err != nil {
			log.Warn().Err(err).Msg("temp file cleanup failed")
		}
	}()

	return ui.RenderReport(stdout, res, ui.ReportOptions{
		ShowBody:         cfg.ShowBody,
		BodyPreviewBytes: cfg.BodyPreviewBytes,
		SaveBody:         keepBody,
		ShowSpeed:        cfg.ShowSpeed,
	})
}
