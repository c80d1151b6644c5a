package noise

func mulNoiseEval1(n *node, x []float32) []float32 {
	l := n.left.eval1(n.left, x)
	r := n.right.eval1(n.right, x)
	n.kern.mul(n.out, l, r)
	return n.out
}

func mulNoiseEval2(n *node, x, y []float32) []float32 {
	l := n.left.eval2(n.left, x, y)
	r := n.right.eval2(n.right, x, y)
	n.kern.mul(n.out, l, r)
	return n.out
}

func mulNoiseEval3(n *node, x, y, z []float32) []float32 {
	l := n.left.eval3(n.left, x, y, z)
	r := n.right.eval3(n.right, x, y, z)
	n.kern.mul(n.out, l, r)
	return n.out
}

func mulValueEval1(n *node, x []float32) []float32 {
	s := n.source.eval1(n.source, x)
	n.kern.mulNumber(n.out, s, n.value)
	return n.out
}

func mulValueEval2(n *node, x, y []float32) []float32 {
	s := n.source.eval2(n.source, x, y)
	n.kern.mulNumber(n.out, s, n.value)
	return n.out
}

func mulValueEval3(n *node, x, y, z []float32) []float32 {
	s := n.source.eval3(n.source, x, y, z)
	n.kern.mulNumber(n.out, s, n.value)
	return n.out
}
