package noise

func clampEval1(n *node, x []float32) []float32 {
	s := n.source.eval1(n.source, x)
	n.kern.clamp(n.out, s, n.low, n.high)
	return n.out
}

func clampEval2(n *node, x, y []float32) []float32 {
	s := n.source.eval2(n.source, x, y)
	n.kern.clamp(n.out, s, n.low, n.high)
	return n.out
}

func clampEval3(n *node, x, y, z []float32) []float32 {
	s := n.source.eval3(n.source, x, y, z)
	n.kern.clamp(n.out, s, n.low, n.high)
	return n.out
}
