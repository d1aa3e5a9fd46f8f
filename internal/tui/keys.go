package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/aftercare/internal/config"
)

// keyMap holds the bindings built from the configured key mappings, each
// with its arrow-key alternates.
type keyMap struct {
	PrevOption   key.Binding
	NextOption   key.Binding
	SelectOption key.Binding
	PickDate     key.Binding
	Next         key.Binding
	Back         key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Confirm    key.Binding
	Cancel     key.Binding

	ShowHelp key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevOption:   key.NewBinding(key.WithKeys(km.PrevOption, "left"), key.WithHelp(km.PrevOption+"/←", "previous package")),
		NextOption:   key.NewBinding(key.WithKeys(km.NextOption, "right"), key.WithHelp(km.NextOption+"/→", "next package")),
		SelectOption: key.NewBinding(key.WithKeys(km.SelectOption, "enter"), key.WithHelp(km.SelectOption, "choose package")),
		PickDate:     key.NewBinding(key.WithKeys(km.PickDate), key.WithHelp(km.PickDate, "pick start date")),
		Next:         key.NewBinding(key.WithKeys(km.Next), key.WithHelp(km.Next, "next")),
		Back:         key.NewBinding(key.WithKeys(km.Back), key.WithHelp(km.Back, "back")),

		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left", "shift+tab"), key.WithHelp(km.PrevColumn+"/←", "previous column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right", "tab"), key.WithHelp(km.NextColumn+"/→", "next column")),
		ScrollUp:   key.NewBinding(key.WithKeys(km.ScrollUp, "up"), key.WithHelp(km.ScrollUp+"/↑", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys(km.ScrollDown, "down"), key.WithHelp(km.ScrollDown+"/↓", "scroll down")),
		Confirm:    key.NewBinding(key.WithKeys(km.Confirm), key.WithHelp(km.Confirm, "confirm")),
		Cancel:     key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(km.Cancel, "cancel")),

		ShowHelp: key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:     key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// bindingSet adapts a group of bindings to help.KeyMap.
type bindingSet struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindingSet) ShortHelp() []key.Binding  { return b.short }
func (b bindingSet) FullHelp() [][]key.Binding { return b.full }

// pageHelp lists the booking page bindings.
func (k keyMap) pageHelp() bindingSet {
	return bindingSet{
		short: []key.Binding{k.SelectOption, k.PickDate, k.Next, k.ShowHelp, k.Quit},
		full: [][]key.Binding{
			{k.PrevOption, k.NextOption, k.SelectOption},
			{k.PickDate, k.Next, k.Back},
			{k.ShowHelp, k.Quit},
		},
	}
}

// pickerHelp lists the date picker bindings.
func (k keyMap) pickerHelp() bindingSet {
	return bindingSet{
		short: []key.Binding{k.ScrollUp, k.ScrollDown, k.NextColumn, k.Confirm, k.Cancel},
		full: [][]key.Binding{
			{k.PrevColumn, k.NextColumn},
			{k.ScrollUp, k.ScrollDown},
			{k.Confirm, k.Cancel},
		},
	}
}
