package game

type Difficulty struct {
	Name  string
	Level string
}
