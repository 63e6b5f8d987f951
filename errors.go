/*
 * errors.go, part of gocharmm.
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

import "fmt"

//CError is the concrete error type for this package. It fullfills the
//Error and FileError interfaces.
type CError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err CError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("gocharmm: %s", err.message)
	}
	return fmt.Sprintf("gocharmm: file %s: %s", err.filename, err.message)
}

func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err CError) FileName() string { return err.filename }

func (err CError) Critical() bool { return err.critical }

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before returning it.
//if used with an error that doesn't implement Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//The stable first parts of the error messages produced by this package.
const (
	UnableToOpen         = "Unable to open file"
	UnrecognizedFileType = "Unrecognized file type"
	MalformedLine        = "Not enough columns"
	BadConversion        = "Could not convert"
	UnknownAtomType      = "Atom type in NONBONDED section not present in the AtomType list"
	ReadError            = "Error reading line"
)
