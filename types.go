/*
 * types.go, part of gocharmm.
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
	"slices"

	"gonum.org/v1/gonum/mat"
)

//AtomType is a named and numbered classification of an atom, carrying its
//mass, element and (once the NONBONDED section of a parameter file has been
//resolved) its Lennard-Jones parameters. One AtomType instance is shared by
//the three indexes of a ParamSet that point to it.
type AtomType struct {
	Name         string
	Number       int
	Mass         float64
	AtomicNumber int
	epsilon      float64
	rmin         float64
	epsilon14    float64
	rmin14       float64
	hasLJ        bool
	has14        bool
}

//SetLJParams attaches the Lennard-Jones well depth and Rmin/2 to the atom
//type. If two more values are given, they are taken as the 1-4 epsilon and
//Rmin/2; otherwise the 1-4 parameters are left unset, NOT defaulted to the
//plain ones.
func (A *AtomType) SetLJParams(epsilon, rmin float64, fourteen ...float64) {
	A.epsilon = epsilon
	A.rmin = rmin
	A.hasLJ = true
	if len(fourteen) >= 2 {
		A.epsilon14 = fourteen[0]
		A.rmin14 = fourteen[1]
		A.has14 = true
	}
}

//LJParams returns the Lennard-Jones epsilon and Rmin/2 of the atom type.
//The last value is false if they were never attached.
func (A *AtomType) LJParams() (float64, float64, bool) {
	return A.epsilon, A.rmin, A.hasLJ
}

//LJ14Params returns the 1-4 Lennard-Jones epsilon and Rmin/2 of the atom
//type. The last value is false if the parameter file didn't define them.
func (A *AtomType) LJ14Params() (float64, float64, bool) {
	return A.epsilon14, A.rmin14, A.has14
}

//Equal returns whether A and B have the same fields, including any attached
//Lennard-Jones parameters.
func (A *AtomType) Equal(B *AtomType) bool {
	return A.Name == B.Name && A.Number == B.Number && A.Mass == B.Mass &&
		A.AtomicNumber == B.AtomicNumber && A.hasLJ == B.hasLJ &&
		A.has14 == B.has14 && A.epsilon == B.epsilon && A.rmin == B.rmin &&
		A.epsilon14 == B.epsilon14 && A.rmin14 == B.rmin14
}

//BondType holds the force constant (kcal/mol/A^2) and equilibrium distance
//(A) of a bond between two atom types.
type BondType struct {
	K   float64
	Req float64
}

func (B *BondType) Equal(B2 *BondType) bool {
	return B.K == B2.K && B.Req == B2.Req
}

//AngleType holds the force constant (kcal/mol/rad^2) and equilibrium value
//(degrees) of an angle between three atom types.
type AngleType struct {
	K      float64
	Theteq float64
}

func (A *AngleType) Equal(A2 *AngleType) bool {
	return A.K == A2.K && A.Theteq == A2.Theteq
}

//UreyBradleyType holds the 1-3 force constant and equilibrium distance
//paired with an angle term. Angles without one get the NoUreyBradley
//sentinel instead.
type UreyBradleyType struct {
	K      float64
	Req    float64
	absent bool
}

//NoUreyBradley marks an angle that carries no Urey-Bradley term. It only
//compares equal to itself.
var NoUreyBradley = &UreyBradleyType{absent: true}

//Absent returns whether this is the no-Urey-Bradley sentinel.
func (U *UreyBradleyType) Absent() bool { return U.absent }

func (U *UreyBradleyType) Equal(U2 *UreyBradleyType) bool {
	if U.absent || U2.absent {
		return U.absent == U2.absent
	}
	return U.K == U2.K && U.Req == U2.Req
}

//DihedralType is one term of a (possibly multiterm) proper torsion: force
//constant, periodicity and phase. The periodicity is integer-valued but kept
//as a float, the way parameter files write it.
type DihedralType struct {
	K     float64
	Per   float64
	Phase float64
}

func (D *DihedralType) Equal(D2 *DihedralType) bool {
	return D.K == D2.K && D.Per == D2.Per && D.Phase == D2.Phase
}

func (D *DihedralType) String() string {
	return fmt.Sprintf("<DihedralType k=%g per=%g phase=%g>", D.K, D.Per, D.Phase)
}

//ImproperType holds the force constant and equilibrium value of an improper
//torsion.
type ImproperType struct {
	K     float64
	Psieq float64
}

func (I *ImproperType) Equal(I2 *ImproperType) bool {
	return I.K == I2.K && I.Psieq == I2.Psieq
}

//CmapType is a 2-D torsion-correction energy surface sampled on a
//Resolution x Resolution grid. Grid holds the Resolution^2 energies in the
//order the parameter file listed them (rows over the first torsion).
type CmapType struct {
	Resolution int
	Grid       []float64
}

func (C *CmapType) Equal(C2 *CmapType) bool {
	return C.Resolution == C2.Resolution && slices.Equal(C.Grid, C2.Grid)
}

//Matrix returns the correction surface as a Resolution x Resolution gonum
//matrix. The data is copied, so the grid stays immutable. Panics if the
//grid doesn't hold Resolution^2 values.
func (C *CmapType) Matrix() *mat.Dense {
	return mat.NewDense(C.Resolution, C.Resolution, slices.Clone(C.Grid))
}

//NBFixType overrides the Lennard-Jones combination rule between one
//specific pair of atom types.
type NBFixType struct {
	Emin float64
	Rmin float64
}

func (N *NBFixType) Equal(N2 *NBFixType) bool {
	return N.Emin == N2.Emin && N.Rmin == N2.Rmin
}

/**Canonical keys**
 * Most bonded terms can appear in a parameter file with their atom types in
 * either direction, so every key type below has a constructor producing the
 * one canonical form for any listing order. Always build keys with the
 * constructors, never with literals. */

//AtomTypeKey indexes an atom type by its (name, number) pair, the most
//robust of the three atom-type indexes.
type AtomTypeKey struct {
	Name   string
	Number int
}

//BondKey is the canonical key of a bond: the two type names, sorted.
type BondKey [2]string

func NewBondKey(t1, t2 string) BondKey {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return BondKey{t1, t2}
}

//AngleKey is the canonical key of an angle: the central type stays in the
//middle, the end types are sorted.
type AngleKey [3]string

func NewAngleKey(t1, t2, t3 string) AngleKey {
	if t1 > t3 {
		t1, t3 = t3, t1
	}
	return AngleKey{t1, t2, t3}
}

//DihedralKey is the canonical key of a proper torsion. The tuple is kept or
//reversed whole: ends are compared first and, only if they match, the two
//middle types break the tie.
type DihedralKey [4]string

func NewDihedralKey(t1, t2, t3, t4 string) DihedralKey {
	if t1 < t4 {
		return DihedralKey{t1, t2, t3, t4}
	}
	if t1 > t4 {
		return DihedralKey{t4, t3, t2, t1}
	}
	if t2 < t3 {
		return DihedralKey{t1, t2, t3, t4}
	}
	return DihedralKey{t4, t3, t2, t1}
}

//ImproperKey is the canonical key of an improper torsion: all four type
//names, fully sorted. Impropers don't define a central atom in a fixed
//position, unlike dihedrals.
type ImproperKey [4]string

func NewImproperKey(t1, t2, t3, t4 string) ImproperKey {
	k := ImproperKey{t1, t2, t3, t4}
	slices.Sort(k[:])
	return k
}

//CmapKey is the canonical key of a CMAP grid: the two 4-type torsions,
//each independently replaced by the smaller of itself and its reverse,
//concatenated.
type CmapKey [8]string

func NewCmapKey(t1, t2, t3, t4, t5, t6, t7, t8 string) CmapKey {
	k1 := cmapHalfKey(t1, t2, t3, t4)
	k2 := cmapHalfKey(t5, t6, t7, t8)
	return CmapKey{k1[0], k1[1], k1[2], k1[3], k2[0], k2[1], k2[2], k2[3]}
}

func cmapHalfKey(t1, t2, t3, t4 string) [4]string {
	forward := [4]string{t1, t2, t3, t4}
	reverse := [4]string{t4, t3, t2, t1}
	if slices.Compare(forward[:], reverse[:]) <= 0 {
		return forward
	}
	return reverse
}

//NBFixKey is the canonical key of an NBFIX override: the two type names,
//sorted.
type NBFixKey [2]string

func NewNBFixKey(t1, t2 string) NBFixKey {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return NBFixKey{t1, t2}
}
