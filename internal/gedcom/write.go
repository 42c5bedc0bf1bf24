package gedcom

import (
	"bufio"
	"io"
	"strconv"
)

// Write serializes records as level-prefixed lines. Levels are derived from
// nesting depth, so records built in code never need to track them.
func Write(w io.Writer, records []*Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if err := writeRecord(bw, r, 0); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, r *Record, level int) error {
	w.WriteString(strconv.Itoa(level))
	if r.XRef != "" {
		w.WriteByte(' ')
		w.WriteString(r.XRef)
	}
	w.WriteByte(' ')
	w.WriteString(string(r.Tag))
	if r.Value != "" {
		w.WriteByte(' ')
		w.WriteString(r.Value)
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}

	for _, c := range r.Children {
		if err := writeRecord(w, c, level+1); err != nil {
			return err
		}
	}
	return nil
}
