package main

type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func MoveFromIndex(idx int) Move {
	return Move{X: idx % boardSize, Y: idx / boardSize}
}

// Index is the row-major cell index of the move. Legal-move enumeration and
// search tie-breaking both follow ascending index order.
func (m Move) Index() int {
	return m.Y*boardSize + m.X
}

func (m Move) IsValid() bool {
	return m.X >= 0 && m.Y >= 0 && m.X < boardSize && m.Y < boardSize
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}
