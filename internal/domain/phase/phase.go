// Package phase defines the scripted scenes of the narrative and their order.
package phase

// Phase is one scripted scene in the linear narrative
type Phase int

const (
	DayOne Phase = iota
	HeadingHome
	MeetTheWife
	LeavingHome
	BackToWork
	EmptyHouse
	GetMushroom
	IntoTheFactory
	CultRoom
)

var sequence = []Phase{
	DayOne,
	HeadingHome,
	MeetTheWife,
	LeavingHome,
	BackToWork,
	EmptyHouse,
	GetMushroom,
	IntoTheFactory,
	CultRoom,
}

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case DayOne:
		return "DayOne"
	case HeadingHome:
		return "HeadingHome"
	case MeetTheWife:
		return "MeetTheWife"
	case LeavingHome:
		return "LeavingHome"
	case BackToWork:
		return "BackToWork"
	case EmptyHouse:
		return "EmptyHouse"
	case GetMushroom:
		return "GetMushroom"
	case IntoTheFactory:
		return "IntoTheFactory"
	case CultRoom:
		return "CultRoom"
	default:
		return "Unknown"
	}
}

// Next returns the phase that follows p.
// ok is false for the terminal phase and for unknown values.
func (p Phase) Next() (next Phase, ok bool) {
	for i, s := range sequence {
		if s == p && i+1 < len(sequence) {
			return sequence[i+1], true
		}
	}
	return p, false
}

// Terminal reports whether the game ends once this phase is reached
func (p Phase) Terminal() bool {
	return p == CultRoom
}

// Sequence returns the phases in narrative order
func Sequence() []Phase {
	out := make([]Phase, len(sequence))
	copy(out, sequence)
	return out
}
