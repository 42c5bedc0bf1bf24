package gedcom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineLength bounds a single line; long notes are expected to use CONC/CONT
const maxLineLength = 1 << 20

// SyntaxError reports a malformed line
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("gedcom: line %d: %s", e.Line, e.Msg)
}

// Parse reads level-prefixed lines and returns the top-level records
func Parse(r io.Reader) ([]*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		roots  []*Record
		stack  []*Record
		lineNo int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimRight(line, "\r")
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			continue
		}

		level, rec, err := parseLine(line)
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Msg: err.Error()}
		}
		if level > len(stack) {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("level %d follows level %d", level, len(stack)-1)}
		}

		stack = stack[:level]
		if level == 0 {
			roots = append(roots, rec)
		} else {
			parent := stack[level-1]
			parent.Children = append(parent.Children, rec)
		}
		stack = append(stack, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gedcom: read: %w", err)
	}

	return roots, nil
}

// parseLine splits "level [@xref@] tag [value]"
func parseLine(line string) (int, *Record, error) {
	levelStr, rest, _ := strings.Cut(line, " ")
	level, err := strconv.Atoi(levelStr)
	if err != nil || level < 0 {
		return 0, nil, fmt.Errorf("invalid level %q", levelStr)
	}

	rest = strings.TrimLeft(rest, " ")
	rec := &Record{}

	if strings.HasPrefix(rest, "@") {
		xref, after, _ := strings.Cut(rest, " ")
		if !IsPointer(xref) {
			return 0, nil, fmt.Errorf("invalid cross reference %q", xref)
		}
		rec.XRef = xref
		rest = strings.TrimLeft(after, " ")
	}

	tag, value, _ := strings.Cut(rest, " ")
	if tag == "" {
		return 0, nil, errors.New("missing tag")
	}
	rec.Tag = Tag(tag)
	rec.Value = value

	return level, rec, nil
}
