package Trees

import (
	"strings"
)

// board is a ragged grid of runes that rows and columns grow on demand. Cells
// never written read as spaces.
type board struct {
	rows [][]rune
}

func (b *board) row(r, minLen int) []rune {
	for len(b.rows) <= r {
		b.rows = append(b.rows, nil)
	}
	row := b.rows[r]
	for len(row) < minLen {
		row = append(row, ' ')
	}
	b.rows[r] = row
	return row
}

func (b *board) write(r, c int, s []rune) {
	copy(b.row(r, c+len(s))[c:], s)
}

func (b *board) repeat(r, c, n int, ch rune) {
	if n <= 0 {
		return
	}
	row := b.row(r, c+n)
	for i := c; i < c+n; i++ {
		row[i] = ch
	}
}

// render the board with trailing spaces and trailing blank rows removed.
func (b *board) render() string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
