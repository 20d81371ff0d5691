package lilypond

import "fmt"

// repeatPhase is the position of a sequencer within its repeat.
type repeatPhase int

const (
	inRepeatBody repeatPhase = iota
	inAlternative
	repeatClosed
)

func (p repeatPhase) String() string {
	switch p {
	case inRepeatBody:
		return "repeat body"
	case inAlternative:
		return "alternative"
	case repeatClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// sequencer brackets one repeat and its endings. The repeat body is closed
// and the alternative block opened when ending 1 is entered; the block is
// closed when the last ending is exited.
type sequencer struct {
	phase   repeatPhase
	endings int
}

// enterEnding reports whether the alternative block opens here.
func (q *sequencer) enterEnding(position int) (bool, error) {
	switch {
	case q.phase == inRepeatBody && position == 1:
		q.phase = inAlternative
		return true, nil
	case q.phase == inAlternative && position > 1 && position <= q.endings:
		return false, nil
	}
	return false, fmt.Errorf("ending %d of %d entered in %s", position, q.endings, q.phase)
}

// exitEnding reports whether the alternative block closes here.
func (q *sequencer) exitEnding(position int) (bool, error) {
	if q.phase != inAlternative {
		return false, fmt.Errorf("ending %d of %d exited in %s", position, q.endings, q.phase)
	}
	if position == q.endings {
		q.phase = repeatClosed
		return true, nil
	}
	return false, nil
}

// finish checks that a repeat with endings has closed its alternative block.
func (q *sequencer) finish() error {
	if q.endings > 0 && q.phase != repeatClosed {
		return fmt.Errorf("repeat with %d endings left in %s", q.endings, q.phase)
	}
	return nil
}
