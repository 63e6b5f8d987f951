/*
 * charmm_test.go, part of gocharmm.
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
	"strings"
	"testing"
)

//Reads the full fixture set and checks every dictionary.
func TestLoadSet(Te *testing.T) {
	fmt.Println("Full parameter set read test!")
	p, err := LoadSet("test/test.rtf", "test/test.prm", "test/test.str")
	if err != nil {
		Te.Fatal(err)
	}
	//Atom types: 5 from the RTF plus 1 from the stream's rtf section.
	if len(p.AtomTypes) != 6 {
		Te.Errorf("Expected 6 atom types, got %d", len(p.AtomTypes))
	}
	ct := p.AtomTypes["CT"]
	if ct == nil {
		Te.Fatal("CT atom type missing")
	}
	if ct.AtomicNumber != 6 || ct.Mass != 12.011 {
		Te.Errorf("CT atom type wrong: %+v", ct)
	}
	//NX has no element column, so its element comes from its mass.
	if nx := p.AtomTypes["NX"]; nx == nil || nx.AtomicNumber != 7 {
		Te.Errorf("NX element not inferred from mass: %+v", nx)
	}
	//The three indexes must share instances.
	if p.AtomTypesNum[2] != ct || p.AtomTypesTuple[AtomTypeKey{"CT", 2}] != ct {
		Te.Error("Atom type indexes don't share one instance")
	}
	//Bonds: CT-CT, HA-OT (listed twice, backwards), NX-SX, plus PX-OT
	//from the stream.
	if len(p.BondTypes) != 4 {
		Te.Errorf("Expected 4 bond types, got %d", len(p.BondTypes))
	}
	if b := p.BondTypes[NewBondKey("OT", "HA")]; b == nil || b.K != 545.0 || b.Req != 0.9572 {
		Te.Errorf("HA-OT bond wrong: %+v", b)
	}
	if b := p.BondTypes[NewBondKey("PX", "OT")]; b == nil || b.K != 270.0 {
		Te.Errorf("Stream PX-OT bond wrong: %+v", b)
	}
	//Angles and their Urey-Bradley companions.
	if len(p.AngleTypes) != 2 || len(p.UreyBradleyTypes) != 2 {
		Te.Errorf("Expected 2 angle and 2 Urey-Bradley types, got %d and %d", len(p.AngleTypes), len(p.UreyBradleyTypes))
	}
	hckey := NewAngleKey("HA", "CT", "HA")
	if a := p.AngleTypes[hckey]; a == nil || a.K != 35.5 || a.Theteq != 108.4 {
		Te.Errorf("HA-CT-HA angle wrong: %+v", a)
	}
	if ub := p.UreyBradleyTypes[hckey]; ub == nil || ub.Absent() || ub.K != 5.4 || ub.Req != 1.802 {
		Te.Errorf("HA-CT-HA Urey-Bradley wrong: %+v", ub)
	}
	if ub := p.UreyBradleyTypes[NewAngleKey("CT", "CT", "OT")]; ub != NoUreyBradley {
		Te.Errorf("CT-CT-OT should carry the no-Urey-Bradley sentinel, got %+v", ub)
	}
	//Impropers, including the 7-column override.
	if im := p.ImproperTypes[NewImproperKey("OT", "CT", "HA", "HA")]; im == nil || im.K != 120.0 || im.Psieq != 0.0 {
		Te.Errorf("OT improper wrong: %+v", im)
	}
	if im := p.ImproperTypes[NewImproperKey("NX", "CT", "HA", "HA")]; im == nil || im.K != 96.0 || im.Psieq != 1.0 {
		Te.Errorf("NX improper 7th column not honored: %+v", im)
	}
	//Lennard-Jones attachment, with and without 1-4 columns.
	eps, rmin, ok := ct.LJParams()
	if !ok || eps != -0.11 || rmin != 2.0 {
		Te.Errorf("CT LJ params wrong: %v %v %v", eps, rmin, ok)
	}
	if eps14, rmin14, ok := ct.LJ14Params(); !ok || eps14 != -0.01 || rmin14 != 1.9 {
		Te.Errorf("CT 1-4 LJ params wrong: %v %v %v", eps14, rmin14, ok)
	}
	if _, _, ok := p.AtomTypes["HA"].LJ14Params(); ok {
		Te.Error("HA should have no 1-4 LJ params")
	}
	//NBFIX: the backwards duplicate collapses into one entry.
	if len(p.NBFixTypes) != 1 {
		Te.Errorf("Expected 1 NBFIX type, got %d", len(p.NBFixTypes))
	}
	if n := p.NBFixTypes[NewNBFixKey("SX", "OT")]; n == nil || n.Emin != -0.15 || n.Rmin != 3.5 {
		Te.Errorf("NBFIX wrong: %+v", n)
	}
	//The parameter file's title.
	if len(p.Titles) != 1 || !strings.Contains(p.Titles[0], "gocharmm test parameter set") {
		Te.Errorf("Title not captured: %v", p.Titles)
	}
	fmt.Println("Read", len(p.AtomTypes), "atom types,", len(p.BondTypes), "bond types")
}

//The same torsion listed in both directions must merge, same-periodicity
//terms must replace, and new periodicities must append.
func TestDihedralMultiterm(Te *testing.T) {
	p, err := LoadSet("test/test.rtf", "test/test.prm")
	if err != nil {
		Te.Fatal(err)
	}
	if len(p.DihedralTypes) != 2 {
		Te.Fatalf("Expected 2 dihedral keys, got %d", len(p.DihedralTypes))
	}
	key := NewDihedralKey("OT", "CT", "CT", "CT") //backwards on purpose
	terms := p.DihedralTypes[key]
	if len(terms) != 2 {
		Te.Fatalf("Expected 2 terms for %v, got %d", key, len(terms))
	}
	//The n=3 term was parsed three times: forward, backwards, and once
	//more with a new force constant. Only the newest survives, in place.
	if terms[0].Per != 3 || terms[0].K != 0.3 {
		Te.Errorf("n=3 term not replaced in place: %v", terms[0])
	}
	if terms[1].Per != 1 || terms[1].K != 0.1 || terms[1].Phase != 180.0 {
		Te.Errorf("n=1 term wrong: %v", terms[1])
	}
}

//A CMAP grid spans many lines and is keyed by two independently
//canonicalized torsions.
func TestCmapAccumulation(Te *testing.T) {
	p, err := LoadSet("test/test.rtf", "test/test.prm")
	if err != nil {
		Te.Fatal(err)
	}
	if len(p.CmapTypes) != 2 {
		Te.Fatalf("Expected 2 CMAP types, got %d", len(p.CmapTypes))
	}
	c1 := p.CmapTypes[NewCmapKey("CT", "CT", "CT", "OT", "CT", "CT", "OT", "HA")]
	if c1 == nil {
		Te.Fatal("First CMAP grid missing")
	}
	if c1.Resolution != 3 || len(c1.Grid) != 9 {
		Te.Errorf("First CMAP grid wrong: res %d, %d values", c1.Resolution, len(c1.Grid))
	}
	if c1.Grid[0] != 0.1 || c1.Grid[4] != 0.5 || c1.Grid[8] != 0.9 {
		Te.Errorf("CMAP values out of order: %v", c1.Grid)
	}
	//The second grid has no header after it; it must be finalized at the
	//end of the read, not dropped.
	c2 := p.CmapTypes[NewCmapKey("NX", "CT", "CT", "OT", "NX", "CT", "CT", "OT")]
	if c2 == nil {
		Te.Fatal("Trailing CMAP grid was dropped")
	}
	if c2.Resolution != 2 || len(c2.Grid) != 4 || c2.Grid[3] != 4.0 {
		Te.Errorf("Trailing CMAP grid wrong: %+v", c2)
	}
	m := c2.Matrix()
	if r, c := m.Dims(); r != 2 || c != 2 || m.At(1, 0) != 3.0 {
		Te.Errorf("CMAP matrix view wrong: %v", m)
	}
}

//Canonical keys must not depend on the order atoms were listed in.
func TestKeyCanonicalization(Te *testing.T) {
	if NewBondKey("C2", "C1") != NewBondKey("C1", "C2") {
		Te.Error("Bond keys differ with listing order")
	}
	if NewAngleKey("C3", "C2", "C1") != NewAngleKey("C1", "C2", "C3") {
		Te.Error("Angle keys differ with listing order")
	}
	if NewDihedralKey("A", "B", "C", "D") != NewDihedralKey("D", "C", "B", "A") {
		Te.Error("Dihedral keys differ with listing order")
	}
	//Equal ends: the middle types break the tie.
	if NewDihedralKey("X", "B", "A", "X") != (DihedralKey{"X", "A", "B", "X"}) {
		Te.Error("Dihedral middle-atom tie-break wrong")
	}
	if NewImproperKey("D", "A", "C", "B") != (ImproperKey{"A", "B", "C", "D"}) {
		Te.Error("Improper keys not fully sorted")
	}
	if NewCmapKey("D", "C", "B", "A", "A", "B", "C", "D") != NewCmapKey("A", "B", "C", "D", "D", "C", "B", "A") {
		Te.Error("CMAP half-keys not canonicalized independently")
	}
	if NewNBFixKey("ZN", "CA") != (NBFixKey{"CA", "ZN"}) {
		Te.Error("NBFIX keys differ with listing order")
	}
}

//A NONBONDED entry for an unregistered atom type fails the read, and
//nothing gets attached.
func TestUnresolvedNonbonded(Te *testing.T) {
	p := NewParamSet()
	if err := p.ReadTopologyFile("test/test.rtf"); err != nil {
		Te.Fatal(err)
	}
	err := p.ReadParameterFile("test/partial.prm")
	if err == nil {
		Te.Fatal("Unknown atom type in NONBONDED didn't fail the read")
	}
	if !strings.Contains(err.Error(), "QQ") {
		Te.Errorf("Error doesn't name the missing type: %v", err)
	}
	//HA was a valid entry in the same section, but the failed read must
	//not have attached anything to it.
	if _, _, ok := p.AtomTypes["HA"].LJParams(); ok {
		Te.Error("Partial nonbonded attachment after a failed read")
	}
}

//Topology must be readable before parameters in any argument order, and a
//parameter file without atom types must fail alone.
func TestReadOrdering(Te *testing.T) {
	//New sorts its arguments into topologies, parameters, streams.
	p, err := New("test/test.prm", "test/test.str", "test/test.rtf")
	if err != nil {
		Te.Fatal(err)
	}
	if len(p.AtomTypes) != 6 {
		Te.Errorf("Expected 6 atom types, got %d", len(p.AtomTypes))
	}
	//The fixture parameter file has no ATOMS section of its own.
	if _, err := LoadSet("", "test/test.prm"); err == nil {
		Te.Error("Parameter file read without atom types should fail")
	}
}

//File-type dispatch: .inp by substring, unknown suffixes fatal, .gz
//transparently decompressed.
func TestFileDispatch(Te *testing.T) {
	p, err := New("test/par_extra.inp")
	if err != nil {
		Te.Fatal(err)
	}
	if b := p.BondTypes[NewBondKey("XA", "XB")]; b == nil || b.K != 100.0 {
		Te.Errorf(".inp parameter file not read: %+v", b)
	}
	if _, err := New("test/whatever.xyz"); err == nil {
		Te.Error("Unrecognized extension should be fatal")
	}
	if _, err := New("test/nope.inp"); err == nil {
		Te.Error(".inp without par/top in the name should be fatal")
	}
	p, err = New("test/gz_test.rtf.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if at := p.AtomTypes["FX"]; at == nil || at.AtomicNumber != 9 {
		Te.Errorf("Gzipped topology not read: %+v", at)
	}
	fmt.Println("Dispatch test over")
}

//The stream reader alone: one rtf section, one parameter section.
func TestStreamFile(Te *testing.T) {
	p := NewParamSet()
	if err := p.ReadStreamFile("test/test.str"); err != nil {
		Te.Fatal(err)
	}
	if at := p.AtomTypes["PX"]; at == nil || at.AtomicNumber != 15 {
		Te.Errorf("Stream rtf section not read: %+v", at)
	}
	if b := p.BondTypes[NewBondKey("OT", "PX")]; b == nil || b.Req != 1.61 {
		Te.Errorf("Stream parameter section not read: %+v", b)
	}
}
