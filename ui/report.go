package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ftahirops/httpstat/engine"
	"github.com/ftahirops/httpstat/model"
)

// headerNameStyle is the gray used for response header names.
var headerNameStyle = GrayScale(14)

const truncatedMarker = "... (truncated)"

// ReportOptions selects the optional report sections.
type ReportOptions struct {
	ShowBody         bool
	BodyPreviewBytes int
	SaveBody         bool
	ShowSpeed        bool
}

// RenderReport writes the response head, the body section, the timing
// diagram and optionally the speed line for one probe result.
func RenderReport(w io.Writer, res *engine.Result, opts ReportOptions) error {
	var b strings.Builder

	if res.Response != nil && res.Response.Proto != "" {
		writeResponse(&b, res.Response)
		b.WriteString("\n")
	}

	if err := writeBody(&b, res.Exchange.BodyPath, opts); err != nil {
		return err
	}

	b.WriteString(NewDiagram(res.Exchange.Scheme, res.Timing).Format())
	b.WriteString("\n")

	if opts.ShowSpeed {
		b.WriteString("\n")
		b.WriteString(speedLine(res.Timing))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeResponse(b *strings.Builder, r *model.Response) {
	b.WriteString(Green.Apply(r.Proto))
	if r.Status != "" {
		b.WriteString(" " + Cyan.Apply(r.Status))
	}
	b.WriteString("\n")
	for _, h := range r.Headers {
		fmt.Fprintf(b, "%s %s\n", headerNameStyle.Apply(h.Name+":"), Cyan.Apply(h.Value))
	}
}

func writeBody(b *strings.Builder, path string, opts ReportOptions) error {
	if path == "" {
		return nil
	}
	switch {
	case opts.ShowBody:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		limit := opts.BodyPreviewBytes
		if limit < 0 {
			limit = 0
		}
		if len(data) > limit {
			b.Write(data[:limit])
			b.WriteString("\n" + Cyan.Apply(truncatedMarker) + "\n")
		} else {
			b.Write(data)
			if len(data) > 0 && data[len(data)-1] != '\n' {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	case opts.SaveBody:
		st, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat body: %w", err)
		}
		fmt.Fprintf(b, "%s stored in: %s (%s)\n\n", Green.Apply("Body"), path, humanize.Bytes(uint64(st.Size())))
	}
	return nil
}

func speedLine(t *model.Timing) string {
	down, _ := t.SpeedDownload()
	up, _ := t.SpeedUpload()
	return fmt.Sprintf("speed_download: %s/s, speed_upload: %s/s", humanSpeed(down), humanSpeed(up))
}

func humanSpeed(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return humanize.Bytes(uint64(bps))
}
