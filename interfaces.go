/*
 * interfaces.go, part of gocharmm.
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

// LineSource is the interface for anything that can hand the readers a
// sequence of text lines, one at a time. Next returns io.EOF when the
// source is exhausted. Comment stripping, if any, is the source's problem;
// blank lines must be passed through (the NONBONDED section needs them).
type LineSource interface {
	Next() (string, error)
}

// SectionSource is the interface for stream-like files holding several
// titled topology/parameter sections. NextSection returns io.EOF when no
// sections remain.
type SectionSource interface {
	NextSection() (string, LineSource, error)
}

//Errors

// Error is the interface for errors that the packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it should just return the current decoration slice, not add the empty string to it.
}

// FileError is the interface for errors produced while reading a force-field
// file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
}
