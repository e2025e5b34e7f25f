package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Tab        key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Single     key.Binding
	Multi      key.Binding
	Scoreboard key.Binding
	Retry      key.Binding
	Refresh    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "game/scoreboard")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Single:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "single game")),
		Multi:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "multiplayer")),
		Scoreboard: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "scoreboard")),
		Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

// screenHelp is the help line of one screen.
type screenHelp []key.Binding

func (h screenHelp) ShortHelp() []key.Binding  { return h }
func (h screenHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) helpFor(s Screen) screenHelp {
	switch s {
	case ScreenHome:
		return screenHelp{k.Single, k.Multi, k.Scoreboard, k.Tab, k.Quit}
	case ScreenChooseGameType:
		return screenHelp{k.Up, k.Down, k.Select, k.Back, k.Quit}
	case ScreenBattle:
		return screenHelp{k.Up, k.Down, k.Select, k.Back, k.Quit}
	case ScreenResults:
		return screenHelp{k.Retry, k.Back, k.Tab, k.Quit}
	case ScreenScoreboard:
		return screenHelp{k.Refresh, k.Back, k.Tab, k.Quit}
	}
	return screenHelp{k.Quit}
}
