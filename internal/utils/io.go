package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadAll reads piped input to the end, failing on empty input.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}

	return data, nil
}

// ReadLine reads a single line from r without its line ending.
// Used for --password-stdin. Pass a *bufio.Reader to keep reading the
// remaining input afterwards.
func ReadLine(r io.Reader) (string, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
