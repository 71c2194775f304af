package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"m8speak/widgets"
)

type keyMap struct {
	RepeatPage  key.Binding
	RepeatValue key.Binding
	Silence     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		RepeatPage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "repeat page"),
		),
		RepeatValue: key.NewBinding(
			key.WithKeys("v", "enter"),
			key.WithHelp("v", "repeat value"),
		),
		Silence: key.NewBinding(
			key.WithKeys("s", "esc"),
			key.WithHelp("s", "silence"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RepeatPage, k.RepeatValue, k.Silence, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RepeatPage, k.RepeatValue, k.Silence},
		{k.Help, k.Quit},
	}
}

// sections lists every binding with all of its keys for the help panel
func (k keyMap) sections() []widgets.KeySection {
	titles := []string{"Narration", "Program"}
	var out []widgets.KeySection
	for i, group := range k.FullHelp() {
		sec := widgets.KeySection{Title: titles[i]}
		for _, b := range group {
			keys := ""
			for j, name := range b.Keys() {
				if j > 0 {
					keys += "/"
				}
				keys += name
			}
			sec.Keys = append(sec.Keys, widgets.KeyBinding{Key: keys, Desc: b.Help().Desc})
		}
		out = append(out, sec)
	}
	return out
}
