package noise

// Lerp remaps the selector from -1..1 to a 0..1 interpolation factor and
// blends the high and low branches with it. This is a property of the
// -1..1 range, so the selector noise is required to stay inside it.

func lerpBlend(n *node, sel, high, low []float32) []float32 {
	k := n.kern
	k.mulNumber(n.t, sel, 0.5)
	k.addNumber(n.t, n.t, 0.5)
	out := n.out
	for i := range out {
		out[i] = low[i] + (high[i]-low[i])*n.t[i]
	}
	return out
}

func lerpEval1(n *node, x []float32) []float32 {
	sel := n.source.eval1(n.source, x)
	high := n.right.eval1(n.right, x)
	low := n.left.eval1(n.left, x)
	return lerpBlend(n, sel, high, low)
}

func lerpEval2(n *node, x, y []float32) []float32 {
	sel := n.source.eval2(n.source, x, y)
	high := n.right.eval2(n.right, x, y)
	low := n.left.eval2(n.left, x, y)
	return lerpBlend(n, sel, high, low)
}

func lerpEval3(n *node, x, y, z []float32) []float32 {
	sel := n.source.eval3(n.source, x, y, z)
	high := n.right.eval3(n.right, x, y, z)
	low := n.left.eval3(n.left, x, y, z)
	return lerpBlend(n, sel, high, low)
}
