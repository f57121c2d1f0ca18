package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// fileDistance is the number of files between two squares.
func fileDistance(a, b chess.Square) int {
	return abs(b.File() - a.File())
}

// rankDistance is the number of ranks between two squares.
func rankDistance(a, b chess.Square) int {
	return abs(b.Rank() - a.Rank())
}

// direction returns the unit rank and file step leading from one square
// toward another. Each component is -1, 0 or 1.
func direction(from, to chess.Square) (dr, df int) {
	return unit(to.Rank() - from.Rank()), unit(to.File() - from.File())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func unit(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
