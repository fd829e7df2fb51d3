package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/ar90n/prioritree"
	"github.com/ar90n/prioritree/collection"
	"github.com/cockroachdb/errors"
)

const (
	backendBst   = "bst"
	backendHeap  = "heap"
	backendBTree = "btree"
)

var backendNames = []string{backendBst, backendHeap, backendBTree}

func newQueue[T any](backend string) (prioritree.Queue[T], error) {
	switch backend {
	case backendBst:
		return collection.NewBstPriorityQueue[T](), nil
	case backendHeap:
		return collection.NewHeapPriorityQueue[T](0), nil
	case backendBTree:
		return collection.NewBTreePriorityQueue[T](0), nil
	default:
		return nil, errors.Newf("unknown backend: %s", backend)
	}
}

// readEntries parses "<priority> <value>" lines. The value is the rest of
// the line after the first run of white space. Blank lines and lines
// starting with '#' are skipped.
func readEntries(r io.Reader) ([]prioritree.Entry[string], error) {
	entries := make([]prioritree.Entry[string], 0)

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		field, rest := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); 0 <= i {
			field, rest = line[:i], strings.TrimSpace(line[i:])
		}

		priority, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid priority %q", lineNo, field)
		}
		entries = append(entries, prioritree.Entry[string]{Value: rest, Priority: priority})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	return entries, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return file, nil
}

func loadEntries(path string) ([]prioritree.Entry[string], error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readEntries(r)
}
