package game

// Tier is the quality of a successful judgement, best first.
type Tier uint8

const (
	JusticeCritical Tier = iota
	Justice
	Attack
	Miss
)

var tierNames = [...]string{"Justice Critical", "Justice", "Attack", "Miss"}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "Unknown"
}

// Short is the abbreviation used in debug output
func (t Tier) Short() string {
	switch t {
	case JusticeCritical:
		return "JC"
	case Justice:
		return "J"
	case Attack:
		return "A"
	}
	return "M"
}
