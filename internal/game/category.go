package game

import "fmt"

type Category uint8

const (
	Tap Category = iota
	ExTap
	Flick
	Air
	Hold
	Slide
	AirAction
	Hazard
)

var categoryNames = [...]string{
	Tap:       "tap",
	ExTap:     "extap",
	Flick:     "flick",
	Air:       "air",
	Hold:      "hold",
	Slide:     "slide",
	AirAction: "airaction",
	Hazard:    "hazard",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

// Sustained notes carry steps and are judged over a duration.
func (c Category) Sustained() bool {
	return c == Hold || c == Slide || c == AirAction
}

func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown note type %q", s)
}

type Role uint8

const (
	Step Role = iota
	End
	Injection
	Control
	Invisible
)

var roleNames = [...]string{
	Step:      "step",
	End:       "end",
	Injection: "injection",
	Control:   "control",
	Invisible: "invisible",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", r)
}

func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown step role %q", s)
}

type Direction uint8

const (
	Up Direction = iota
	Down
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown air direction %q", s)
}
