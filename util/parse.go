package util

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadFileLines reads a file and returns its lines.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// SplitLines splits a text block on newlines, dropping a trailing "\r" from
// each line so CRLF input behaves like LF input.
func SplitLines(block string) []string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// SplitKeyValue splits "key<sep>value" at the first sep and trims both sides.
// ok is false when sep does not occur in line.
func SplitKeyValue(line, sep string) (key, val string, ok bool) {
	idx := strings.Index(line, sep)
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):]), true
}

// ParseFiniteFloat parses a string to a finite float64.
// NaN and infinities are rejected like any other malformed number.
func ParseFiniteFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
