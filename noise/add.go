package noise

func addNoiseEval1(n *node, x []float32) []float32 {
	l := n.left.eval1(n.left, x)
	r := n.right.eval1(n.right, x)
	n.kern.add(n.out, l, r)
	return n.out
}

func addNoiseEval2(n *node, x, y []float32) []float32 {
	l := n.left.eval2(n.left, x, y)
	r := n.right.eval2(n.right, x, y)
	n.kern.add(n.out, l, r)
	return n.out
}

func addNoiseEval3(n *node, x, y, z []float32) []float32 {
	l := n.left.eval3(n.left, x, y, z)
	r := n.right.eval3(n.right, x, y, z)
	n.kern.add(n.out, l, r)
	return n.out
}

func addValueEval1(n *node, x []float32) []float32 {
	s := n.source.eval1(n.source, x)
	n.kern.addNumber(n.out, s, n.value)
	return n.out
}

func addValueEval2(n *node, x, y []float32) []float32 {
	s := n.source.eval2(n.source, x, y)
	n.kern.addNumber(n.out, s, n.value)
	return n.out
}

func addValueEval3(n *node, x, y, z []float32) []float32 {
	s := n.source.eval3(n.source, x, y, z)
	n.kern.addNumber(n.out, s, n.value)
	return n.out
}
