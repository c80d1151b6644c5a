package noise

func maxEval1(n *node, x []float32) []float32 {
	l := n.left.eval1(n.left, x)
	r := n.right.eval1(n.right, x)
	n.kern.max(n.out, l, r)
	return n.out
}

func maxEval2(n *node, x, y []float32) []float32 {
	l := n.left.eval2(n.left, x, y)
	r := n.right.eval2(n.right, x, y)
	n.kern.max(n.out, l, r)
	return n.out
}

func maxEval3(n *node, x, y, z []float32) []float32 {
	l := n.left.eval3(n.left, x, y, z)
	r := n.right.eval3(n.right, x, y, z)
	n.kern.max(n.out, l, r)
	return n.out
}

func minEval1(n *node, x []float32) []float32 {
	l := n.left.eval1(n.left, x)
	r := n.right.eval1(n.right, x)
	n.kern.min(n.out, l, r)
	return n.out
}

func minEval2(n *node, x, y []float32) []float32 {
	l := n.left.eval2(n.left, x, y)
	r := n.right.eval2(n.right, x, y)
	n.kern.min(n.out, l, r)
	return n.out
}

func minEval3(n *node, x, y, z []float32) []float32 {
	l := n.left.eval3(n.left, x, y, z)
	r := n.right.eval3(n.right, x, y, z)
	n.kern.min(n.out, l, r)
	return n.out
}
