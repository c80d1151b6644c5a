package noise

// Range produces a plateau outside the [low, high] selector band and a
// linear blend of the two branches inside it. Selection is per lane, not a
// branch over the whole block: every branch is evaluated for every lane
// and the clipped lanes pick their branch's value afterwards. Degenerate
// bounds (high == low) divide by zero and propagate NaN/Inf per IEEE-754;
// that is accepted, not special-cased.

func rangeSelect(n *node, sel, highN, lowN []float32) []float32 {
	out := n.out
	lo, hi := n.low, n.high
	band := hi - lo
	for i := range out {
		f := (sel[i] - lo) / band
		v := lowN[i] + (highN[i]-lowN[i])*f
		if sel[i] > hi {
			v = highN[i]
		}
		if sel[i] < lo {
			v = lowN[i]
		}
		out[i] = v
	}
	return out
}

func rangeEval1(n *node, x []float32) []float32 {
	sel := n.source.eval1(n.source, x)
	highN := n.right.eval1(n.right, x)
	lowN := n.left.eval1(n.left, x)
	return rangeSelect(n, sel, highN, lowN)
}

func rangeEval2(n *node, x, y []float32) []float32 {
	sel := n.source.eval2(n.source, x, y)
	highN := n.right.eval2(n.right, x, y)
	lowN := n.left.eval2(n.left, x, y)
	return rangeSelect(n, sel, highN, lowN)
}

func rangeEval3(n *node, x, y, z []float32) []float32 {
	sel := n.source.eval3(n.source, x, y, z)
	highN := n.right.eval3(n.right, x, y, z)
	lowN := n.left.eval3(n.left, x, y, z)
	return rangeSelect(n, sel, highN, lowN)
}
