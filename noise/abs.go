package noise

func absEval1(n *node, x []float32) []float32 {
	s := n.source.eval1(n.source, x)
	n.kern.abs(n.out, s)
	return n.out
}

func absEval2(n *node, x, y []float32) []float32 {
	s := n.source.eval2(n.source, x, y)
	n.kern.abs(n.out, s)
	return n.out
}

func absEval3(n *node, x, y, z []float32) []float32 {
	s := n.source.eval3(n.source, x, y, z)
	n.kern.abs(n.out, s)
	return n.out
}
