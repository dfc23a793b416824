package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pick/internal/util/logx"
)

type SourceKind string

const (
	SourceStdin SourceKind = "stdin"
	SourceFile  SourceKind = "file"
)

type Options struct {
	Source      SourceKind
	Path        string
	ScanBufSize int // per-line max (bytes)
	MaxLines    int // snapshot cap; 0 = unbounded
}

// Read drains the input source once and returns the line snapshot. Trailing
// line terminators are stripped. Lines past MaxLines are dropped.
func Read(opt Options) ([]string, error) {
	switch opt.Source {
	case SourceStdin:
		return readFromReader(os.Stdin, "stdin", opt)
	case SourceFile:
		f, err := os.Open(opt.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readFromReader(f, opt.Path, opt)
	default:
		return nil, errors.New("unknown source kind")
	}
}

func readFromReader(r io.Reader, src string, opt Options) ([]string, error) {
	scanner := bufio.NewScanner(r)
	maxBuf := opt.ScanBufSize
	if maxBuf <= 0 {
		maxBuf = 1024 * 1024
	}
	buf := make([]byte, 0, 1024*64)
	scanner.Buffer(buf, maxBuf)

	lines := []string{}
	dropped := 0
	for scanner.Scan() {
		if opt.MaxLines > 0 && len(lines) >= opt.MaxLines {
			dropped++
			continue
		}
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	if dropped > 0 {
		logx.Warnf("snapshot overflow: dropped %d lines (cap=%d). Consider increasing -max-buffer.", dropped, opt.MaxLines)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no lines on %s", src)
	}
	return lines, nil
}
