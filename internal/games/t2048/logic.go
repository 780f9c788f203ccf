package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board is a square grid of tile values, row-major; 0 is an empty cell.
type Board [][]int

// NewBoard returns an empty n×n board.
func NewBoard(n int) Board {
	b := make(Board, n)
	for y := range b {
		b[y] = make([]int, n)
	}
	return b
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both boards hold the same tiles.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for y := range b {
		for x := range b[y] {
			if b[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	sum := 0
	for _, row := range b {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// slideRow slides a line toward index 0, merging equal neighbours. A tile
// produced by a merge does not merge again in the same move.
// Returns the new line and the score gained from merges.
func slideRow(row []int) (result []int, score int) {
	result = make([]int, len(row))
	writePos := 0
	merged := false

	for _, v := range row {
		if v == 0 {
			continue
		}
		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
			continue
		}
		result[writePos] = v
		writePos++
		merged = false
	}

	return result, score
}

// line reads the i-th line in dir order: index 0 is the edge tiles slide
// toward.
func (b Board) line(dir Direction, i int) []int {
	n := len(b)
	out := make([]int, n)
	for k := range n {
		x, y := lineCell(dir, i, k, n)
		out[k] = b[y][x]
	}
	return out
}

func (b Board) setLine(dir Direction, i int, vals []int) {
	for k, v := range vals {
		x, y := lineCell(dir, i, k, len(b))
		b[y][x] = v
	}
}

func lineCell(dir Direction, i, k, n int) (x, y int) {
	switch dir {
	case DirLeft:
		return k, i
	case DirRight:
		return n - 1 - k, i
	case DirUp:
		return i, k
	default:
		return i, n - 1 - k
	}
}

// Slide performs a move in the given direction.
// Returns the new board, score gained, and whether any cell changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	next := board.Clone()
	total := 0
	for i := range board {
		row, score := slideRow(board.line(dir, i))
		next.setLine(dir, i, row)
		total += score
	}
	return next, total, !next.Equal(board)
}

// Cell is a board coordinate.
type Cell struct{ X, Y int }

// EmptyCells returns coordinates of all empty cells, row by row.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y, row := range board {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
func HasPossibleMerge(board Board) bool {
	n := len(board)
	for y := range n {
		for x := range n {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < n-1 && board[y][x+1] == val {
				return true
			}
			if y < n-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports a full board with no adjacent equal pair.
func IsGameOver(board Board) bool {
	return len(EmptyCells(board)) == 0 && !HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, row := range board {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}
