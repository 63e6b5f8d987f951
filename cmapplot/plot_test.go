/*
 * plot_test.go, part of gocharmm.
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

package cmapplot

import (
	"fmt"
	"testing"

	charmm "github.com/rmera/gocharmm"
)

func TestPlot(Te *testing.T) {
	fmt.Println("CMAP plot test!")
	p, err := charmm.LoadSet("../test/test.rtf", "../test/test.prm")
	if err != nil {
		Te.Fatal(err)
	}
	ct := p.CmapTypes[charmm.NewCmapKey("CT", "CT", "CT", "OT", "CT", "CT", "OT", "HA")]
	if ct == nil {
		Te.Fatal("Fixture CMAP grid missing")
	}
	err = Plot(ct, "CMAP correction surface", "../test/cmap_surface")
	if err != nil {
		Te.Error(err)
	}
	fmt.Println("Plot written to test/cmap_surface.png")
}
