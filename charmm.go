/*
 * charmm.go, part of gocharmm.
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
	"path/filepath"
	"strings"
)

//ParamSet holds a parameter set defined by CHARMM files: the atom types
//from the MASS records of topology files (and of the ATOMS section of newer
//parameter files) plus everything in the parameter files.
//
//All the type dictionaries are keyed by canonical keys (see types.go), so a
//term is found regardless of the order its atoms were listed in the source.
//The three atom-type indexes share one AtomType instance per type; the
//(name, number) tuple index is the most robust one, the other two help when
//only the name or only the number is at hand. The dihedral dictionary is
//list-valued because one torsion may need several periodicities.
//
//Reads add to the set; a later read overwrites whatever earlier reads put
//under the same key (except for the per-periodicity dihedral merge). A
//ParamSet is not safe for concurrent mutation.
type ParamSet struct {
	AtomTypes        map[string]*AtomType
	AtomTypesNum     map[int]*AtomType
	AtomTypesTuple   map[AtomTypeKey]*AtomType
	BondTypes        map[BondKey]*BondType
	AngleTypes       map[AngleKey]*AngleType
	UreyBradleyTypes map[AngleKey]*UreyBradleyType
	DihedralTypes    map[DihedralKey][]*DihedralType
	ImproperTypes    map[ImproperKey]*ImproperType
	CmapTypes        map[CmapKey]*CmapType
	NBFixTypes       map[NBFixKey]*NBFixType
	//The title lines ("*>>...") of the parameter files read so far.
	Titles []string
}

//NewParamSet returns an empty parameter set ready for reading into.
func NewParamSet() *ParamSet {
	return &ParamSet{
		AtomTypes:        make(map[string]*AtomType),
		AtomTypesNum:     make(map[int]*AtomType),
		AtomTypesTuple:   make(map[AtomTypeKey]*AtomType),
		BondTypes:        make(map[BondKey]*BondType),
		AngleTypes:       make(map[AngleKey]*AngleType),
		UreyBradleyTypes: make(map[AngleKey]*UreyBradleyType),
		DihedralTypes:    make(map[DihedralKey][]*DihedralType),
		ImproperTypes:    make(map[ImproperKey]*ImproperType),
		CmapTypes:        make(map[CmapKey]*CmapType),
		NBFixTypes:       make(map[NBFixKey]*NBFixType),
	}
}

//New builds a parameter set from the given topology, parameter and stream
//files, recognized by suffix:
//
//  .rtf, .top  residue topology file
//  .par, .prm  parameter file
//  .str        stream file
//  .inp        parameter or topology file, if "par" or "top" is in the name
//
//A trailing .gz on any of them means gzip compression. All topology files
//are read first, then all parameter files, then all stream files, whatever
//order they were given in: parameter files need the atom types to exist
//before their NONBONDED sections can be resolved. Anything else is a fatal
//error.
func New(filenames ...string) (*ParamSet, error) {
	var tops, pars, strs []string
	for _, name := range filenames {
		n := strings.TrimSuffix(name, ".gz")
		switch {
		case strings.HasSuffix(n, ".rtf") || strings.HasSuffix(n, ".top"):
			tops = append(tops, name)
		case strings.HasSuffix(n, ".par") || strings.HasSuffix(n, ".prm"):
			pars = append(pars, name)
		case strings.HasSuffix(n, ".str"):
			strs = append(strs, name)
		case strings.HasSuffix(n, ".inp"):
			//Only the base name counts: the directory is likely "toppar"
			//and would make everything look like a topology file.
			base := filepath.Base(n)
			if strings.Contains(base, "par") {
				pars = append(pars, name)
			} else if strings.Contains(base, "top") {
				tops = append(tops, name)
			} else {
				return nil, CError{fmt.Sprintf("%s: %s", UnrecognizedFileType, name), name, []string{"New"}, true}
			}
		default:
			return nil, CError{fmt.Sprintf("%s: %s", UnrecognizedFileType, name), name, []string{"New"}, true}
		}
	}
	P := NewParamSet()
	for _, name := range tops {
		if err := P.ReadTopologyFile(name); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	for _, name := range pars {
		if err := P.ReadParameterFile(name); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	for _, name := range strs {
		if err := P.ReadStreamFile(name); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	return P, nil
}

//LoadSet builds a parameter set from one topology file, one parameter file
//and any number of stream files, read in that order. Either of the first
//two can be an empty string to be skipped; a parameter file with its own
//ATOMS section needs no topology file.
func LoadSet(tfile, pfile string, sfiles ...string) (*ParamSet, error) {
	P := NewParamSet()
	if tfile != "" {
		if err := P.ReadTopologyFile(tfile); err != nil {
			return nil, errDecorate(err, "LoadSet")
		}
	}
	if pfile != "" {
		if err := P.ReadParameterFile(pfile); err != nil {
			return nil, errDecorate(err, "LoadSet")
		}
	}
	for _, sfile := range sfiles {
		if err := P.ReadStreamFile(sfile); err != nil {
			return nil, errDecorate(err, "LoadSet")
		}
	}
	return P, nil
}
