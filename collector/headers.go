package collector

import (
	"fmt"
	"strings"

	"github.com/ftahirops/httpstat/model"
	"github.com/ftahirops/httpstat/util"
)

// ReadHeaders parses a curl header dump. Redirects, proxy CONNECTs and
// interim responses each add a block; the last one wins.
func ReadHeaders(path string) (*model.Response, error) {
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	return parseHeaders(lines), nil
}

func parseHeaders(lines []string) *model.Response {
	resp := &model.Response{}
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "HTTP/") {
			resp = &model.Response{}
			proto, status, _ := strings.Cut(line, " ")
			resp.Proto = proto
			resp.Status = strings.TrimSpace(status)
			continue
		}
		if line == "" || resp.Proto == "" {
			continue
		}
		name, value, ok := util.SplitKeyValue(line, ":")
		if !ok || name == "" {
			continue
		}
		resp.Headers = append(resp.Headers, model.Header{Name: name, Value: value})
	}
	return resp
}
