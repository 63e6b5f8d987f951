/*
 * read.go, part of gocharmm.
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
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
)

//parseFloat converts one whitespace token to a float64, producing a CError
//that names the field and the offending token on failure.
func parseFloat(tok, field, filename string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, CError{fmt.Sprintf("%s %s %q to float", BadConversion, field, tok), filename, []string{"parseFloat"}, true}
	}
	return v, nil
}

//parseInt is the integer counterpart of parseFloat.
func parseInt(tok, field, filename string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, CError{fmt.Sprintf("%s %s %q to int", BadConversion, field, tok), filename, []string{"parseInt"}, true}
	}
	return v, nil
}

func malformed(section, line, filename string) error {
	return CError{fmt.Sprintf("%s in %s section: %q", MalformedLine, section, line), filename, []string{"readParameters"}, true}
}

//ReadTopologyFile reads _only_ the atom type definitions (MASS records)
//from a residue topology (RTF/TOP) file. Everything else in it, bonded
//sections included, is skipped. The file is closed on every exit path.
func (P *ParamSet) ReadTopologyFile(name string) error {
	f, err := NewCharmmFile(name)
	if err != nil {
		return errDecorate(err, "ReadTopologyFile")
	}
	defer f.Close()
	if err := P.readTopology(f, name); err != nil {
		return errDecorate(err, "ReadTopologyFile")
	}
	return nil
}

//ReadTopology is like ReadTopologyFile but reads from a caller-supplied
//source, which stays the caller's to close.
func (P *ParamSet) ReadTopology(src LineSource) error {
	return P.readTopology(src, "")
}

func (P *ParamSet) readTopology(src LineSource, filename string) error {
	for {
		raw, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return CError{ReadError + ": " + err.Error(), filename, []string{"readTopology"}, true}
		}
		line := strings.TrimSpace(raw)
		if len(line) < 4 || line[:4] != "MASS" {
			continue
		}
		at, err := parseMassLine(line, filename)
		if err != nil {
			return err
		}
		P.addAtomType(at)
	}
}

//parseMassLine builds an AtomType from a MASS record:
//MASS number name mass [element]. If the element column is missing or
//unrecognized, the element is inferred from the mass.
func parseMassLine(line, filename string) (*AtomType, error) {
	words := strings.Fields(line)
	if len(words) < 4 {
		return nil, malformed("MASS", line, filename)
	}
	number, err := parseInt(words[1], "atom type number", filename)
	if err != nil {
		return nil, err
	}
	mass, err := parseFloat(words[3], "atom mass", filename)
	if err != nil {
		return nil, err
	}
	atomicNumber := -1
	if len(words) >= 5 {
		if n, ok := atomicNumberFromSymbol(words[4]); ok {
			atomicNumber = n
		}
	}
	if atomicNumber < 0 {
		atomicNumber = symbolAtomicNumber[elementByMass(mass)]
	}
	return &AtomType{Name: words[2], Number: number, Mass: mass, AtomicNumber: atomicNumber}, nil
}

func (P *ParamSet) addAtomType(at *AtomType) {
	P.AtomTypes[at.Name] = at
	P.AtomTypesNum[at.Number] = at
	P.AtomTypesTuple[AtomTypeKey{at.Name, at.Number}] = at
}

//ReadParameterFile reads every parameter from a PAR/PRM file. All the atom
//types referenced by its NONBONDED section must be defined by the end of
//the read, either by the file's own ATOMS section or by a previously read
//topology file. The file is closed on every exit path.
func (P *ParamSet) ReadParameterFile(name string) error {
	f, err := NewCharmmFile(name)
	if err != nil {
		return errDecorate(err, "ReadParameterFile")
	}
	defer f.Close()
	if err := P.readParameters(f, name); err != nil {
		return errDecorate(err, "ReadParameterFile")
	}
	return nil
}

//ReadParameters is like ReadParameterFile but reads from a caller-supplied
//source, which stays the caller's to close.
func (P *ParamSet) ReadParameters(src LineSource) error {
	return P.readParameters(src, "")
}

//ljHolder collects one NONBONDED row until the whole section has been
//scanned and can be cross-referenced against the atom types.
type ljHolder struct {
	epsilon float64
	rmin    float64
	eps14   float64
	rmin14  float64
	has14   bool
}

func (P *ParamSet) readParameters(src LineSource, filename string) error {
	section := ""
	//the current CMAP grid being accumulated, if any (they span many lines)
	var cmapKey CmapKey
	var cmapRes int
	var cmapData []float64
	cmapOpen := false
	//NONBONDED data starts after the first blank line following the header;
	//what comes in between are global cutoff options, not per-type rows.
	needsBlank := false
	nonbonded := make(map[string]*ljHolder)
	title := ""
	titleSeen := false
	for {
		raw, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return CError{ReadError + ": " + err.Error(), filename, []string{"readParameters"}, true}
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			needsBlank = false
			continue
		}
		if !titleSeen && strings.HasPrefix(line, "*>>") {
			end := 78
			if len(line) < end {
				end = len(line)
			}
			title = line[1:end]
			titleSeen = true
			continue
		}
		//Section headers. The header line itself is never data.
		switch {
		case strings.HasPrefix(line, "ATOMS"):
			section = "ATOMS"
			continue
		case strings.HasPrefix(line, "BONDS"):
			section = "BONDS"
			continue
		case strings.HasPrefix(line, "ANGLES"):
			section = "ANGLES"
			continue
		case strings.HasPrefix(line, "DIHEDRALS"):
			section = "DIHEDRALS"
			continue
		case strings.HasPrefix(line, "IMPROPER"):
			section = "IMPROPER"
			continue
		case strings.HasPrefix(line, "CMAP"):
			section = "CMAP"
			continue
		case strings.HasPrefix(line, "NONBONDED"):
			section = "NONBONDED"
			needsBlank = true
			continue
		case strings.HasPrefix(line, "NBFIX"):
			section = "NBFIX"
			continue
		case strings.HasPrefix(line, "HBOND"):
			section = ""
			continue
		case strings.HasPrefix(line, "END"):
			section = ""
			continue
		}
		if section == "" {
			continue
		}
		words := strings.Fields(line)
		switch section {
		case "ATOMS":
			if !strings.HasPrefix(line, "MASS") {
				continue
			}
			at, err := parseMassLine(line, filename)
			if err != nil {
				return err
			}
			P.addAtomType(at)
		case "BONDS":
			if len(words) < 4 {
				return malformed("BONDS", line, filename)
			}
			k, err := parseFloat(words[2], "bond force constant", filename)
			if err != nil {
				return err
			}
			req, err := parseFloat(words[3], "bond equilibrium distance", filename)
			if err != nil {
				return err
			}
			P.BondTypes[NewBondKey(words[0], words[1])] = &BondType{k, req}
		case "ANGLES":
			if len(words) < 5 {
				return malformed("ANGLES", line, filename)
			}
			k, err := parseFloat(words[3], "angle force constant", filename)
			if err != nil {
				return err
			}
			theteq, err := parseFloat(words[4], "angle equilibrium value", filename)
			if err != nil {
				return err
			}
			key := NewAngleKey(words[0], words[1], words[2])
			P.AngleTypes[key] = &AngleType{k, theteq}
			if len(words) >= 7 {
				ubk, err := parseFloat(words[5], "Urey-Bradley force constant", filename)
				if err != nil {
					return err
				}
				ubreq, err := parseFloat(words[6], "Urey-Bradley equilibrium value", filename)
				if err != nil {
					return err
				}
				P.UreyBradleyTypes[key] = &UreyBradleyType{K: ubk, Req: ubreq}
			} else {
				P.UreyBradleyTypes[key] = NoUreyBradley
			}
		case "DIHEDRALS":
			if len(words) < 7 {
				return malformed("DIHEDRALS", line, filename)
			}
			k, err := parseFloat(words[4], "dihedral force constant", filename)
			if err != nil {
				return err
			}
			per, err := parseFloat(words[5], "dihedral periodicity", filename)
			if err != nil {
				return err
			}
			phase, err := parseFloat(words[6], "dihedral phase", filename)
			if err != nil {
				return err
			}
			key := NewDihedralKey(words[0], words[1], words[2], words[3])
			P.addDihedralTerm(key, &DihedralType{k, per, phase})
		case "IMPROPER":
			if len(words) < 6 {
				return malformed("IMPROPER", line, filename)
			}
			k, err := parseFloat(words[4], "improper force constant", filename)
			if err != nil {
				return err
			}
			psieq, err := parseFloat(words[5], "improper equilibrium value", filename)
			if err != nil {
				return err
			}
			//A 7th column is the real equilibrium angle; the 6th is then a
			//placeholder zero.
			if len(words) >= 7 {
				psieq, err = parseFloat(words[6], "improper equilibrium value", filename)
				if err != nil {
					return err
				}
			}
			P.ImproperTypes[NewImproperKey(words[0], words[1], words[2], words[3])] = &ImproperType{k, psieq}
		case "CMAP":
			vals, numeric := allFloats(words)
			if numeric {
				cmapData = append(cmapData, vals...)
				continue
			}
			//Not a row of energies, so it's the header of a new grid.
			//Terminate the previous grid, if there is one.
			if cmapOpen {
				P.CmapTypes[cmapKey] = &CmapType{Resolution: cmapRes, Grid: cmapData}
			}
			if len(words) < 9 {
				return malformed("CMAP", line, filename)
			}
			res, err := parseInt(words[8], "CMAP resolution", filename)
			if err != nil {
				return err
			}
			cmapKey = NewCmapKey(words[0], words[1], words[2], words[3], words[4], words[5], words[6], words[7])
			cmapRes = res
			cmapData = make([]float64, 0, res*res)
			cmapOpen = true
		case "NONBONDED":
			if needsBlank {
				continue
			}
			if len(words) < 4 {
				return malformed("NONBONDED", line, filename)
			}
			//the 2nd column is ignored
			epsilon, err := parseFloat(words[2], "vdW epsilon", filename)
			if err != nil {
				return err
			}
			rmin, err := parseFloat(words[3], "vdW Rmin/2", filename)
			if err != nil {
				return err
			}
			lj := &ljHolder{epsilon: epsilon, rmin: rmin}
			if len(words) >= 7 {
				//the 5th column is ignored too
				lj.eps14, err = parseFloat(words[5], "1-4 vdW epsilon", filename)
				if err != nil {
					return err
				}
				lj.rmin14, err = parseFloat(words[6], "1-4 vdW Rmin/2", filename)
				if err != nil {
					return err
				}
				lj.has14 = true
			}
			nonbonded[words[0]] = lj
		case "NBFIX":
			if len(words) < 4 {
				return malformed("NBFIX", line, filename)
			}
			emin, err := parseFloat(words[2], "NBFIX Emin", filename)
			if err != nil {
				return err
			}
			rmin, err := parseFloat(words[3], "NBFIX Rmin", filename)
			if err != nil {
				return err
			}
			P.NBFixTypes[NewNBFixKey(words[0], words[1])] = &NBFixType{emin, rmin}
		}
	}
	//A grid still being accumulated when the file ends is finalized, not
	//dropped.
	if cmapOpen {
		P.CmapTypes[cmapKey] = &CmapType{Resolution: cmapRes, Grid: cmapData}
	}
	if err := P.resolveNonbonded(nonbonded, filename); err != nil {
		return err
	}
	if titleSeen {
		P.Titles = append(P.Titles, title)
	}
	return nil
}

//addDihedralTerm merges one parsed term into the term list for its key: a
//term with the periodicity of an existing one replaces it in place, under a
//logged warning; anything else is appended in parse order.
func (P *ParamSet) addDihedralTerm(key DihedralKey, term *DihedralType) {
	terms, ok := P.DihedralTypes[key]
	if !ok {
		P.DihedralTypes[key] = []*DihedralType{term}
		return
	}
	for i, old := range terms {
		if old.Per == term.Per {
			log.Printf("gocharmm: replacing dihedral term %v with %v for %v", old, term, key)
			terms[i] = term
			return
		}
	}
	P.DihedralTypes[key] = append(terms, term)
}

//allFloats tries to parse every token of a CMAP line as a float. The second
//return value is false if any token refuses, which marks the line as a grid
//header rather than grid data.
func allFloats(words []string) ([]float64, bool) {
	vals := make([]float64, 0, len(words))
	for _, w := range words {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, false
		}
		vals = append(vals, v)
	}
	return vals, true
}

//resolveNonbonded attaches the collected Lennard-Jones rows to their atom
//types by name. All names are checked before anything is attached: one
//unknown name fails the whole read and leaves every atom type untouched.
func (P *ParamSet) resolveNonbonded(nonbonded map[string]*ljHolder, filename string) error {
	names := make([]string, 0, len(nonbonded))
	for name := range nonbonded {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := P.AtomTypes[name]; !ok {
			return CError{fmt.Sprintf("%s: %s", UnknownAtomType, name), filename, []string{"resolveNonbonded"}, true}
		}
	}
	for _, name := range names {
		lj := nonbonded[name]
		at := P.AtomTypes[name]
		if lj.has14 {
			at.SetLJParams(lj.epsilon, lj.rmin, lj.eps14, lj.rmin14)
		} else {
			at.SetLJParams(lj.epsilon, lj.rmin)
		}
	}
	return nil
}

//ReadStreamFile reads the RTF and parameter sections of a stream (STR)
//file, dispatching each to the corresponding reader. Sections that are
//neither are skipped.
func (P *ParamSet) ReadStreamFile(name string) error {
	s, err := NewCharmmStreamFile(name)
	if err != nil {
		return errDecorate(err, "ReadStreamFile")
	}
	if err := P.readStream(s, name); err != nil {
		return errDecorate(err, "ReadStreamFile")
	}
	return nil
}

//ReadStream is like ReadStreamFile but reads from a caller-supplied section
//source.
func (P *ParamSet) ReadStream(src SectionSource) error {
	return P.readStream(src, "")
}

func (P *ParamSet) readStream(src SectionSource, filename string) error {
	for {
		title, lines, err := src.NextSection()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return CError{ReadError + ": " + err.Error(), filename, []string{"readStream"}, true}
		}
		words := strings.Fields(strings.ToLower(title))
		if len(words) < 2 {
			continue
		}
		switch {
		case words[1] == "rtf":
			if err := P.readTopology(lines, filename); err != nil {
				return err
			}
		case strings.HasPrefix(words[1], "para"):
			if err := P.readParameters(lines, filename); err != nil {
				return err
			}
		}
	}
}
