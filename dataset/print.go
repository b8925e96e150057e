package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

func writeLabel(w *bufio.Writer, label string) {
	w.WriteString(label)
	w.WriteString(":\t")
}

// values < 100 are padded to (at least) 3 chars so that columns line up
func writePadded(w *bufio.Writer, v int) {
	if v < 10 {
		w.WriteByte(' ')
	}
	if v < 100 {
		w.WriteByte(' ')
	}
	w.WriteString(strconv.Itoa(v))
	w.WriteByte(' ')
}

// FprintInts writes "${label}:\t" followed by padded values and a newline
func FprintInts(w io.Writer, label string, values []int) error {
	bw := bufio.NewWriter(w)
	writeLabel(bw, label)
	for _, v := range values {
		writePadded(bw, v)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// FprintRecords is like FprintInts for record keys
func FprintRecords(w io.Writer, label string, recs []Record) error {
	bw := bufio.NewWriter(w)
	writeLabel(bw, label)
	for _, r := range recs {
		writePadded(bw, r.Key)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// PrintInts prints values to stdout
func PrintInts(label string, values []int) {
	FprintInts(os.Stdout, label, values)
}

// PrintRecords prints record keys to stdout
func PrintRecords(label string, recs []Record) {
	FprintRecords(os.Stdout, label, recs)
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Fdump writes a detailed dump of records (keys and payloads) to w
func Fdump(w io.Writer, recs []Record) {
	dumpConfig.Fdump(w, recs)
}
