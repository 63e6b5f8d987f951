/*
 * condense.go, part of gocharmm.
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
	"slices"
	"sort"
)

//Condense eliminates duplicate types from each of the parameter
//dictionaries: afterwards, every set of keys whose values were equal points
//to one shared instance, the one under the lexicographically-first of those
//keys. It returns the receiver, so a set can be condensed at construction
//time:
//
//	params, err := charmm.LoadSet("", "par_all36_prot.prm")
//	if err == nil {
//		params.Condense()
//	}
//
//The scan is pairwise over each dictionary; parameter sets stay in the
//hundreds of entries, so the quadratic cost is not worth avoiding. Keys are
//sorted first, which keeps the surviving instance the same from run to run
//despite map iteration order. Calling Condense twice changes nothing.
func (P *ParamSet) Condense() *ParamSet {
	condenseDict(P.BondTypes)
	condenseDict(P.AngleTypes)
	condenseDict(P.UreyBradleyTypes)
	condenseDict(P.ImproperTypes)
	condenseDict(P.CmapTypes)
	condenseDict(P.NBFixTypes)
	P.condenseDihedrals()
	return P
}

//equaler covers the parameter record types, all of which compare by field.
type equaler[T any] interface {
	Equal(T) bool
}

//lesser covers the canonical key types, which order lexicographically.
type lesser[K any] interface {
	comparable
	less(K) bool
}

func condenseDict[K lesser[K], T equaler[T]](dict map[K]T) {
	keys := sortedKeys(dict)
	for i := 0; i < len(keys)-1; i++ {
		first := dict[keys[i]]
		for j := i + 1; j < len(keys); j++ {
			if dict[keys[j]].Equal(first) {
				dict[keys[j]] = first
			}
		}
	}
}

//Dihedrals are handled apart, since each key holds a list of terms. Terms
//within one list never share a periodicity, so they can't be equal and only
//cross-key comparisons matter.
func (P *ParamSet) condenseDihedrals() {
	keys := sortedKeys(P.DihedralTypes)
	for i := 0; i < len(keys)-1; i++ {
		for _, term := range P.DihedralTypes[keys[i]] {
			for j := i + 1; j < len(keys); j++ {
				later := P.DihedralTypes[keys[j]]
				for jj, term2 := range later {
					if term2.Equal(term) {
						later[jj] = term
					}
				}
			}
		}
	}
}

func sortedKeys[K lesser[K], V any](dict map[K]V) []K {
	keys := make([]K, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

func (k BondKey) less(o BondKey) bool { return slices.Compare(k[:], o[:]) < 0 }

func (k AngleKey) less(o AngleKey) bool { return slices.Compare(k[:], o[:]) < 0 }

func (k DihedralKey) less(o DihedralKey) bool { return slices.Compare(k[:], o[:]) < 0 }

func (k ImproperKey) less(o ImproperKey) bool { return slices.Compare(k[:], o[:]) < 0 }

func (k CmapKey) less(o CmapKey) bool { return slices.Compare(k[:], o[:]) < 0 }

func (k NBFixKey) less(o NBFixKey) bool { return slices.Compare(k[:], o[:]) < 0 }
