/*
 * files.go, part of gocharmm.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package charmm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//CharmmFile is a LineSource over a CHARMM-dialect text file. It strips the
//'!' comments but passes blank lines through, since the NONBONDED section
//gives them meaning. Files ending in .gz are decompressed on the fly.
type CharmmFile struct {
	f    *os.File
	gz   *gzip.Reader
	r    *bufio.Reader
	name string
}

//NewCharmmFile opens the file with the given name for line-by-line reading.
func NewCharmmFile(name string) (*CharmmFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{UnableToOpen + ": " + err.Error(), name, []string{"NewCharmmFile"}, true}
	}
	c := &CharmmFile{f: f, name: name}
	if strings.HasSuffix(name, ".gz") {
		c.gz, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{UnableToOpen + ": " + err.Error(), name, []string{"NewCharmmFile"}, true}
		}
		c.r = bufio.NewReader(c.gz)
	} else {
		c.r = bufio.NewReader(f)
	}
	return c, nil
}

//Name returns the name the file was opened under.
func (C *CharmmFile) Name() string { return C.name }

//Next returns the next line of the file, without its line ending and with
//any '!' comment removed. It returns io.EOF when the file is exhausted.
func (C *CharmmFile) Next() (string, error) {
	line, err := C.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			//a last line with no newline is still a line
			return charmmLine(line), nil
		}
		return "", err
	}
	return charmmLine(line), nil
}

//Close releases the file and, if present, the decompressor. The CharmmFile
//can not be read after this call.
func (C *CharmmFile) Close() error {
	if C.gz != nil {
		C.gz.Close()
	}
	return C.f.Close()
}

func charmmLine(line string) string {
	if i := strings.IndexByte(line, '!'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, "\r\n")
}

//CharmmStreamFile is a SectionSource over a CHARMM stream file: a container
//holding several topology/parameter sections, each introduced by a line
//whose first word is "read". The whole file is slurped at construction, so
//there is nothing to close afterwards.
type CharmmStreamFile struct {
	lines []string
	pos   int
	name  string
}

//NewCharmmStreamFile reads the whole stream file (decompressing .gz names)
//and returns a section source over it.
func NewCharmmStreamFile(name string) (*CharmmStreamFile, error) {
	f, err := NewCharmmFile(name)
	if err != nil {
		return nil, errDecorate(err, "NewCharmmStreamFile")
	}
	defer f.Close()
	s := &CharmmStreamFile{name: name}
	for {
		line, err := f.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CError{ReadError + ": " + err.Error(), name, []string{"NewCharmmStreamFile"}, true}
		}
		s.lines = append(s.lines, line)
	}
	return s, nil
}

//Name returns the name the stream file was opened under.
func (S *CharmmStreamFile) Name() string { return S.name }

//NextSection returns the title of the next "read ..." section and a
//LineSource over its body, which runs until the next section or the end of
//the stream. It returns io.EOF when no sections remain.
func (S *CharmmStreamFile) NextSection() (string, LineSource, error) {
	for S.pos < len(S.lines) && !isSectionStart(S.lines[S.pos]) {
		S.pos++
	}
	if S.pos >= len(S.lines) {
		return "", nil, io.EOF
	}
	title := strings.TrimSpace(S.lines[S.pos])
	S.pos++
	start := S.pos
	for S.pos < len(S.lines) && !isSectionStart(S.lines[S.pos]) {
		S.pos++
	}
	return title, &streamSection{lines: S.lines[start:S.pos]}, nil
}

func isSectionStart(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && strings.ToLower(fields[0]) == "read"
}

//streamSection is the LineSource handed out for one section of a stream
//file.
type streamSection struct {
	lines []string
	pos   int
}

func (s *streamSection) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
