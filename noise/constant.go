package noise

func constantEval1(n *node, _ []float32) []float32 {
	splat(n.out, n.value)
	return n.out
}

func constantEval2(n *node, _, _ []float32) []float32 {
	splat(n.out, n.value)
	return n.out
}

func constantEval3(n *node, _, _, _ []float32) []float32 {
	splat(n.out, n.value)
	return n.out
}
