/*
 * atomicdata.go, part of gocharmm.
 *
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
	"math"
	"strings"
	"unicode"
)

//The elements covered by the tables below, in atomic-number order.
//"EP" is the extra/lone-pair pseudo-particle used by some force fields.
//elementByMass scans them in this order, so ties go to the lighter element.
var elements = []string{"EP", "H", "He", "Li", "Be", "B", "C", "N", "O", "F",
	"Ne", "Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca", "Sc",
	"Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As",
	"Se", "Br", "Kr", "Rb", "Sr", "Mo", "Ag", "Cd", "Sn", "I", "Xe", "Cs",
	"Ba", "Pt", "Au", "Hg", "Pb"}

//A map for assigning atomic numbers to element symbols.
//The elements common in force fields are present, not the whole periodic table.
var symbolAtomicNumber = map[string]int{
	"EP": 0,
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Sc": 21,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ga": 31,
	"Ge": 32,
	"As": 33,
	"Se": 34,
	"Br": 35,
	"Kr": 36,
	"Rb": 37,
	"Sr": 38,
	"Mo": 42,
	"Ag": 47,
	"Cd": 48,
	"Sn": 50,
	"I":  53,
	"Xe": 54,
	"Cs": 55,
	"Ba": 56,
	"Pt": 78,
	"Au": 79,
	"Hg": 80,
	"Pb": 82,
}

//A map for assigning standard atomic masses to element symbols.
//Same coverage as symbolAtomicNumber.
var symbolMass = map[string]float64{
	"EP": 0.0,
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.0122,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.630,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468,
	"Sr": 87.62,
	"Mo": 95.95,
	"Ag": 107.87,
	"Cd": 112.41,
	"Sn": 118.71,
	"I":  126.90,
	"Xe": 131.29,
	"Cs": 132.91,
	"Ba": 137.33,
	"Pt": 195.08,
	"Au": 196.97,
	"Hg": 200.59,
	"Pb": 207.2,
}

//elementByMass returns the symbol of the element whose standard atomic mass
//is closest to the given mass. The comparison is strictly-less, so on an
//exact tie the element scanned first (the lighter one) is kept. If nothing
//comes closer than the mass itself, the "EP" pseudo-element is returned.
func elementByMass(mass float64) string {
	diff := mass
	best := "EP"
	for _, symbol := range elements {
		d := math.Abs(symbolMass[symbol] - mass)
		if d < diff {
			best = symbol
			diff = d
		}
	}
	return best
}

//atomicNumberFromSymbol normalizes the case of an element symbol as found in
//a CHARMM file (first letter upper, second lower) and looks up its atomic
//number. The second return value is false if the symbol is not in the table.
func atomicNumberFromSymbol(symbol string) (int, bool) {
	if symbol == "" {
		return 0, false
	}
	r := []rune(symbol)
	r[0] = unicode.ToUpper(r[0])
	if len(r) == 2 {
		r[1] = unicode.ToLower(r[1])
	}
	n, ok := symbolAtomicNumber[string(r)]
	if !ok && strings.ToUpper(symbol) == "EP" {
		return 0, true
	}
	return n, ok
}
