package noise

func squareEval1(n *node, x []float32) []float32 {
	s := n.source.eval1(n.source, x)
	n.kern.mul(n.out, s, s)
	return n.out
}

func squareEval2(n *node, x, y []float32) []float32 {
	s := n.source.eval2(n.source, x, y)
	n.kern.mul(n.out, s, s)
	return n.out
}

func squareEval3(n *node, x, y, z []float32) []float32 {
	s := n.source.eval3(n.source, x, y, z)
	n.kern.mul(n.out, s, s)
	return n.out
}
