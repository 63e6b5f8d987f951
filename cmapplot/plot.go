/*
 * plot.go, part of gocharmm.
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

//Package cmapplot renders the CMAP correction surfaces of a parameter set
//as heatmap images over the two torsion angles.
package cmapplot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	charmm "github.com/rmera/gocharmm"
)

//surfaceGrid adapts a CMAP grid matrix to the plotter's grid interface,
//mapping grid indexes onto torsion angles in [-180, 180).
type surfaceGrid struct {
	m *mat.Dense
}

func (g surfaceGrid) Dims() (int, int) {
	r, c := g.m.Dims()
	return c, r
}

func (g surfaceGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g surfaceGrid) X(c int) float64 {
	_, cols := g.m.Dims()
	return -180 + 360*float64(c)/float64(cols)
}

func (g surfaceGrid) Y(r int) float64 {
	rows, _ := g.m.Dims()
	return -180 + 360*float64(r)/float64(rows)
}

/*Plot produces a png heatmap of the given CMAP correction surface, with
  both torsion axes in degrees. The ".png" extension is appended to
  plotname. Returns an error or nil*/
func Plot(ct *charmm.CmapType, title, plotname string) error {
	if ct == nil {
		panic("Given nil CMAP type")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	h := plotter.NewHeatMap(surfaceGrid{m: ct.Matrix()}, palette.Heat(12, 1))
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
