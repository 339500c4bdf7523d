package game

// Side identifiers used throughout the engine. The searching player is
// always "me"; the simulated adversary is "opponent".
const (
	Me       = "me"
	Opponent = "opponent"
	Draw     = "draw"
)

// Move is one action a side can take on its ply.
type Move interface {
	String() string
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a game state to a value indicating how favorable the
// position is to "me": positive favors me, negative favors the opponent.
type Evaluate func(State) float64
