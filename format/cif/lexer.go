// SPDX-License-Identifier: MIT
// Package: cif
//
// lexer.go — CIF tokenizer and data-block model.
//
// Handles '#' comments, 'single'/"double" quoted values and ';'-delimited
// multi-line text fields. Tags are lower-cased.

package cif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type token struct {
	text   string
	quoted bool
	line   int
}

func (t token) isTag() bool  { return !t.quoted && strings.HasPrefix(t.text, "_") }
func (t token) isLoop() bool { return !t.quoted && strings.EqualFold(t.text, "loop_") }
func (t token) isData() bool { return !t.quoted && strings.HasPrefix(strings.ToLower(t.text), "data_") }

// tokenize splits r into CIF tokens.
func tokenize(r io.Reader) ([]token, error) {
	var (
		toks   []token
		sc     = bufio.NewScanner(r)
		lineNo int
		inText bool
		text   strings.Builder
		textAt int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if strings.HasPrefix(line, ";") {
			if inText {
				toks = append(toks, token{text: strings.TrimSpace(text.String()), quoted: true, line: textAt})
				text.Reset()
				inText = false
				continue
			}
			inText, textAt = true, lineNo
			text.WriteString(line[1:])
			continue
		}
		if inText {
			text.WriteString("\n" + line)
			continue
		}

		for i := 0; i < len(line); {
			c := line[i]
			switch {
			case c == ' ' || c == '\t':
				i++
			case c == '#':
				i = len(line)
			case c == '\'' || c == '"':
				// A closing quote counts only when followed by whitespace or EOL.
				j := i + 1
				for j < len(line) && !(line[j] == c && (j+1 == len(line) || line[j+1] == ' ' || line[j+1] == '\t')) {
					j++
				}
				if j >= len(line) {
					return nil, fmt.Errorf("line %d: unterminated quote: %w", lineNo, ErrSyntax)
				}
				toks = append(toks, token{text: line[i+1 : j], quoted: true, line: lineNo})
				i = j + 1
			default:
				j := i
				for j < len(line) && line[j] != ' ' && line[j] != '\t' {
					j++
				}
				toks = append(toks, token{text: line[i:j], line: lineNo})
				i = j
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inText {
		return nil, fmt.Errorf("line %d: unterminated text field: %w", textAt, ErrSyntax)
	}
	return toks, nil
}

// loop is one loop_ table: lower-cased tags and rows of raw values.
type loop struct {
	tags []string
	rows [][]string
}

// column returns the index of tag in l, or -1.
func (l *loop) column(tags ...string) int {
	for _, want := range tags {
		for i, t := range l.tags {
			if t == want {
				return i
			}
		}
	}
	return -1
}

// block is the content of one data_ block.
type block struct {
	name  string
	items map[string]string
	loops []*loop
}

// findLoop returns the first loop carrying any of tags.
func (b *block) findLoop(tags ...string) (*loop, int) {
	for _, l := range b.loops {
		if c := l.column(tags...); c >= 0 {
			return l, c
		}
	}
	return nil, -1
}

// parseBlock consumes tokens of the first data block.
func parseBlock(toks []token) (*block, error) {
	b := &block{items: make(map[string]string)}
	i := 0
	// Skip anything before the first data_ header.
	for i < len(toks) && !toks[i].isData() {
		i++
	}
	if i < len(toks) {
		b.name = toks[i].text[len("data_"):]
		i++
	}

	for i < len(toks) {
		t := toks[i]
		switch {
		case t.isData():
			return b, nil
		case t.isLoop():
			i++
			l := &loop{}
			for i < len(toks) && toks[i].isTag() {
				l.tags = append(l.tags, strings.ToLower(toks[i].text))
				i++
			}
			if len(l.tags) == 0 {
				return nil, fmt.Errorf("line %d: loop_ without tags: %w", t.line, ErrSyntax)
			}
			var vals []string
			for i < len(toks) && !toks[i].isTag() && !toks[i].isLoop() && !toks[i].isData() {
				vals = append(vals, toks[i].text)
				i++
			}
			if len(vals)%len(l.tags) != 0 {
				return nil, fmt.Errorf("line %d: loop has %d values for %d tags: %w",
					t.line, len(vals), len(l.tags), ErrSyntax)
			}
			for k := 0; k < len(vals); k += len(l.tags) {
				l.rows = append(l.rows, vals[k:k+len(l.tags)])
			}
			b.loops = append(b.loops, l)
		case t.isTag():
			if i+1 >= len(toks) {
				return nil, fmt.Errorf("line %d: tag %s without value: %w", t.line, t.text, ErrSyntax)
			}
			b.items[strings.ToLower(t.text)] = toks[i+1].text
			i += 2
		default:
			return nil, fmt.Errorf("line %d: unexpected value %q: %w", t.line, t.text, ErrSyntax)
		}
	}
	return b, nil
}
