package entity

// OutcomeKind - decided or undecided status of a grid.
type OutcomeKind string

const (
	KindInProgress OutcomeKind = "in_progress"
	KindWin        OutcomeKind = "win"
	KindTie        OutcomeKind = "tie"
)

// Outcome is always recomputed from a grid, see Grid.Outcome.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Mark        `json:"winner,omitempty"`
}

func Win(mark Mark) Outcome {
	return Outcome{Kind: KindWin, Winner: mark}
}

func Tie() Outcome {
	return Outcome{Kind: KindTie}
}

func InProgress() Outcome {
	return Outcome{Kind: KindInProgress}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind == KindWin || that.Kind == KindTie
}

func (that Outcome) IsWin() bool {
	return that.Kind == KindWin
}

func (that Outcome) IsTie() bool {
	return that.Kind == KindTie
}
