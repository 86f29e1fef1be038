package evaluator

// Outcome is the result of comparing two hands
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	default:
		return "tie"
	}
}

// ShowdownResult holds both ranks and which hand won
type ShowdownResult struct {
	First   HandRank
	Second  HandRank
	Outcome Outcome
}

// Decide picks the winner between two evaluated ranks
func Decide(first, second HandRank) Outcome {
	switch first.Compare(second) {
	case 1:
		return FirstWins
	case -1:
		return SecondWins
	}
	return Tie
}

// Showdown classifies both hands and decides the winner
func Showdown(first, second Hand) ShowdownResult {
	r1 := Classify(first)
	r2 := Classify(second)
	return ShowdownResult{First: r1, Second: r2, Outcome: Decide(r1, r2)}
}
