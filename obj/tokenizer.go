package obj

import (
	"bytes"
	"errors"
	"io"
)

// MaxTokens is the maximum number of tokens per line, including the command.
// Further tokens on the same line are dropped.
const MaxTokens = 64

const DefaultBufferSize = 4096

// number of empty reads after which a reader is considered broken
const maxEmptyReads = 100

// Tokenizer splits a stream into lines of whitespace separated tokens.
// Lines that do not fit into the buffered window are carried over to the
// next read, so a line split across two reads is reported as a whole.
type Tokenizer struct {
	r   io.Reader
	buf []byte

	// window of buffered but not yet consumed bytes
	start, end int

	eof bool
	err error

	lines  int
	line   int
	tokens [][]byte
}

// NewTokenizer creates a tokenizer reading from r using an initial buffer of
// the given size. Lines longer than the buffer grow it.
func NewTokenizer(r io.Reader, size int) *Tokenizer {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Tokenizer{
		r:      r,
		buf:    make([]byte, size),
		lines:  1,
		tokens: make([][]byte, 0, MaxTokens),
	}
}

// Next advances to the next line that contains at least one token.
// It returns false at the end of the stream or on a read error.
func (t *Tokenizer) Next() bool {
	t.tokens = t.tokens[:0]

	for {
		t.skipBlank()

		if t.start < t.end {
			if eol := bytes.IndexAny(t.buf[t.start:t.end], "\r\n"); eol >= 0 {
				t.split(t.buf[t.start : t.start+eol])
				t.start += eol
				return true
			}

			if t.eof {
				// the last line does not need a terminator
				t.split(t.buf[t.start:t.end])
				t.start = t.end
				return true
			}
		} else if t.eof {
			return false
		}

		t.fill()
	}
}

// Command returns the first token of the current line.
func (t *Tokenizer) Command() []byte {
	if len(t.tokens) == 0 {
		return nil
	}

	return t.tokens[0]
}

// Args returns all but the first token of the current line. The slices are only
// valid until the next call to Next.
func (t *Tokenizer) Args() [][]byte {
	if len(t.tokens) == 0 {
		return nil
	}

	return t.tokens[1:]
}

// Line returns the one based line number of the current line.
func (t *Tokenizer) Line() int {
	return t.line
}

// Err returns the first error reported by the underlying reader, ignoring io.EOF.
func (t *Tokenizer) Err() error {
	return t.err
}

func (t *Tokenizer) skipBlank() {
	for t.start < t.end {
		switch t.buf[t.start] {
		case '\n':
			t.lines++
		case ' ', '\t', '\r':
		default:
			return
		}

		t.start++
	}
}

func (t *Tokenizer) split(line []byte) {
	t.line = t.lines

	for idx := 0; idx < len(line); {
		for idx < len(line) && isSeparator(line[idx]) {
			idx++
		}

		if idx == len(line) {
			break
		}

		tokenEnd := idx
		for tokenEnd < len(line) && !isSeparator(line[tokenEnd]) {
			tokenEnd++
		}

		if len(t.tokens) < MaxTokens {
			t.tokens = append(t.tokens, line[idx:tokenEnd:tokenEnd])
		}

		idx = tokenEnd
	}
}

// fill moves the unconsumed rest of the window to the front of the buffer
// and reads more data behind it.
func (t *Tokenizer) fill() {
	if t.start > 0 {
		t.end = copy(t.buf, t.buf[t.start:t.end])
		t.start = 0
	}

	if t.end == len(t.buf) {
		// a single line fills the whole buffer
		grown := make([]byte, 2*len(t.buf))
		copy(grown, t.buf[:t.end])
		t.buf = grown
	}

	for range maxEmptyReads {
		n, err := t.r.Read(t.buf[t.end:])
		t.end += n

		if err != nil {
			t.eof = true

			if !errors.Is(err, io.EOF) {
				t.err = err
			}

			return
		}

		if n > 0 {
			return
		}
	}

	t.eof = true
	t.err = io.ErrNoProgress
}

func isSeparator(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
