/*
 * condense_test.go, part of gocharmm.
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
	"testing"
)

//Condense must alias equal-valued entries to one instance, picking the one
//under the smallest key, and leave everything else alone.
func TestCondense(Te *testing.T) {
	fmt.Println("Condense test!")
	p, err := LoadSet("test/test.rtf", "test/test.prm")
	if err != nil {
		Te.Fatal(err)
	}
	ctct := NewBondKey("CT", "CT")
	nxsx := NewBondKey("NX", "SX")
	b1, b2 := p.BondTypes[ctct], p.BondTypes[nxsx]
	if b1 == nil || b2 == nil {
		Te.Fatal("Fixture bonds missing")
	}
	if !b1.Equal(b2) {
		Te.Fatal("Fixture bonds should hold equal values")
	}
	if b1 == b2 {
		Te.Fatal("Fixture bonds already aliased before Condense")
	}
	p.Condense()
	if p.BondTypes[ctct] != p.BondTypes[nxsx] {
		Te.Error("Equal bond types not aliased")
	}
	//CT-CT sorts before NX-SX, so its instance is the one kept.
	if p.BondTypes[nxsx] != b1 {
		Te.Error("Condense didn't keep the instance under the smallest key")
	}
	//Dihedral terms are condensed across lists, term by term.
	ctterms := p.DihedralTypes[NewDihedralKey("CT", "CT", "CT", "OT")]
	nxterms := p.DihedralTypes[NewDihedralKey("NX", "NX", "NX", "NX")]
	var ct1 *DihedralType
	for _, t := range ctterms {
		if t.Per == 1 {
			ct1 = t
		}
	}
	if ct1 == nil || len(nxterms) != 1 {
		Te.Fatal("Fixture dihedral terms missing")
	}
	if nxterms[0] != ct1 {
		Te.Error("Equal dihedral terms not aliased")
	}
	//The unshared n=3 term keeps its own instance.
	if ctterms[0] == ct1 {
		Te.Error("Distinct dihedral terms were aliased")
	}
	//The no-Urey-Bradley sentinel never aliases to a real term.
	if p.UreyBradleyTypes[NewAngleKey("CT", "CT", "OT")] != NoUreyBradley {
		Te.Error("Sentinel Urey-Bradley entry disturbed")
	}
	if ub := p.UreyBradleyTypes[NewAngleKey("HA", "CT", "HA")]; ub.Absent() {
		Te.Error("Real Urey-Bradley entry replaced by the sentinel")
	}
	//Condensing twice changes nothing.
	kept := p.BondTypes[nxsx]
	p.Condense()
	if p.BondTypes[nxsx] != kept || p.DihedralTypes[NewDihedralKey("NX", "NX", "NX", "NX")][0] != ct1 {
		Te.Error("Condense is not idempotent")
	}
	fmt.Println("Condense test over")
}
