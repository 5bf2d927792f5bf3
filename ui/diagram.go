package ui

import "github.com/ftahirops/httpstat/model"

// NewDiagram fills a template for scheme with every phase of t. Durations are
// cyan; a negative one is red so an out-of-order report stands out.
func NewDiagram(scheme string, t *model.Timing) *Template {
	tpl := NewTemplate(scheme)
	for _, e := range []struct {
		phase Phase
		ms    int64
	}{
		{DNSLookup, t.DNS()},
		{TCPConnection, t.TCPConnect()},
		{SSLHandshake, t.TLSHandshake()},
		{ServerProcessing, t.ServerProcessing()},
		{ContentTransfer, t.ContentTransfer()},
		{NameLookup, t.NameLookup()},
		{Connect, t.Connect()},
		{PreTransfer, t.PreTransfer()},
		{StartTransfer, t.StartTransfer()},
		{Total, t.Total()},
	} {
		tpl.Add(NewProgress(e.phase, e.ms, durationStyle(e.ms)))
	}
	return tpl
}

func durationStyle(ms int64) Style {
	if ms < 0 {
		return Red
	}
	return Cyan
}
