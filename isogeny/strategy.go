/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package isogeny

import (
	"github.com/fentec-project/sike/curve"
	"github.com/fentec-project/sike/field"
)

// The tree traversal. A walk of e steps forms a triangular tableau of
// e rows; the tabulated strategy entry consumed at each split tells how
// many multiplications by the step degree to perform before descending.
// Intermediate points are kept on an explicit stack and pushed through
// every completed isogeny step, together with the tracked image points.

// TwoPowerWalk computes the degree-2^e isogeny with the given kernel,
// starting from the curve (a24plus : c24), and pushes the image points
// through it. The walk consists of e/2 strategy-driven 4-isogeny rows;
// an odd exponent is absorbed by a 2-isogeny up front. The images slice
// is consumed.
func TwoPowerWalk(f *field.Fp2, kernel curve.ProjectivePoint, a24plus, c24 field.Fp2Element,
	images []curve.ProjectivePoint, strategy []int, e int) (field.Fp2Element, field.Fp2Element, []curve.ProjectivePoint) {
	if e%2 == 1 {
		s := curve.XDblE(f, kernel, a24plus, c24, e-1)
		a24plus, c24 = Get2Isog(f, s)
		kernel = Eval2Isog(f, kernel, s)
		for i := range images {
			images[i] = Eval2Isog(f, images[i], s)
		}
	}
	rows := e / 2

	var pts []curve.ProjectivePoint
	var idxs []int
	index, next := 0, 0
	r := kernel
	for row := 1; row < rows; row++ {
		for index < rows-row {
			pts = append(pts, r)
			idxs = append(idxs, index)
			m := strategy[next]
			next++
			r = curve.XDblE(f, r, a24plus, c24, 2*m)
			index += m
		}
		var coeff [3]field.Fp2Element
		a24plus, c24, coeff = Get4Isog(f, r)
		for i := range pts {
			pts[i] = Eval4Isog(f, pts[i], coeff)
		}
		for i := range images {
			images[i] = Eval4Isog(f, images[i], coeff)
		}
		r = pts[len(pts)-1]
		index = idxs[len(idxs)-1]
		pts = pts[:len(pts)-1]
		idxs = idxs[:len(idxs)-1]
	}
	a24plus, c24, coeff := Get4Isog(f, r)
	for i := range images {
		images[i] = Eval4Isog(f, images[i], coeff)
	}
	return a24plus, c24, images
}

// ThreePowerWalk computes the degree-3^e isogeny with the given
// kernel, starting from the curve (a24minus : a24plus), and pushes the
// image points through it. The images slice is consumed.
func ThreePowerWalk(f *field.Fp2, kernel curve.ProjectivePoint, a24minus, a24plus field.Fp2Element,
	images []curve.ProjectivePoint, strategy []int, e int) (field.Fp2Element, field.Fp2Element, []curve.ProjectivePoint) {
	var pts []curve.ProjectivePoint
	var idxs []int
	index, next := 0, 0
	r := kernel
	for row := 1; row < e; row++ {
		for index < e-row {
			pts = append(pts, r)
			idxs = append(idxs, index)
			m := strategy[next]
			next++
			r = curve.XTplE(f, r, a24minus, a24plus, m)
			index += m
		}
		var coeff [2]field.Fp2Element
		a24minus, a24plus, coeff = Get3Isog(f, r)
		for i := range pts {
			pts[i] = Eval3Isog(f, pts[i], coeff)
		}
		for i := range images {
			images[i] = Eval3Isog(f, images[i], coeff)
		}
		r = pts[len(pts)-1]
		index = idxs[len(idxs)-1]
		pts = pts[:len(pts)-1]
		idxs = idxs[:len(idxs)-1]
	}
	a24minus, a24plus, coeff := Get3Isog(f, r)
	for i := range images {
		images[i] = Eval3Isog(f, images[i], coeff)
	}
	return a24minus, a24plus, images
}
