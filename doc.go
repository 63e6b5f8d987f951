/*
 * doc.go, part of gocharmm.
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

/*Package charmm reads CHARMM force-field files into an in-memory parameter set.


	**gocharmm Capabilities**

    Reads CHARMM residue topology (RTF/TOP) files, extracting the atom type
	definitions from their MASS records.

    Reads CHARMM parameter (PAR/PRM) files: atom types, bonds, angles with
	optional Urey-Bradley terms, multiterm dihedrals, impropers, CMAP
	correction grids, nonbonded Lennard-Jones terms and NBFIX pairwise
	overrides.

    Reads CHARMM stream (STR) files, dispatching their titled topology and
	parameter sections to the corresponding reader.

    Reads gzip-compressed versions of all of the above.

    Canonicalizes the atom-type tuples keying every bonded term, so a
	parameter is found no matter the order its atoms were listed in.

    Condenses a parameter set, so value-equal parameters end up as one
	shared instance under every key that maps to them.

    Infers the element of an atom type from its mass when the file does
	not say.

The sibling package cmapplot renders parsed CMAP correction surfaces as
heatmap images.

Parameter sets are built single-threaded; a ParamSet must not be written
by two goroutines at once.
*/
package charmm
