package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	reveal     key.Binding
	copy       key.Binding
	copyUser   key.Binding
	favorites  key.Binding
	category   key.Binding
	reload     key.Binding
	generator  key.Binding
	security   key.Binding
	password   key.Binding
	save       key.Binding
	fill       key.Binding
	toggleFav  key.Binding
	longer     key.Binding
	shorter    key.Binding
	upper      key.Binding
	lower      key.Binding
	numbers    key.Binding
	symbols    key.Binding
	regenerate key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left")),
	right:      key.NewBinding(key.WithKeys("right")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("L")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	reveal:     key.NewBinding(key.WithKeys("r")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyUser:   key.NewBinding(key.WithKeys("u")),
	favorites:  key.NewBinding(key.WithKeys("f")),
	category:   key.NewBinding(key.WithKeys("t")),
	reload:     key.NewBinding(key.WithKeys("R")),
	generator:  key.NewBinding(key.WithKeys("g")),
	security:   key.NewBinding(key.WithKeys("a")),
	password:   key.NewBinding(key.WithKeys("P")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	fill:       key.NewBinding(key.WithKeys("ctrl+g")),
	toggleFav:  key.NewBinding(key.WithKeys("ctrl+f")),
	longer:     key.NewBinding(key.WithKeys("+", "=", "right")),
	shorter:    key.NewBinding(key.WithKeys("-", "left")),
	upper:      key.NewBinding(key.WithKeys("u")),
	lower:      key.NewBinding(key.WithKeys("l")),
	numbers:    key.NewBinding(key.WithKeys("n")),
	symbols:    key.NewBinding(key.WithKeys("s")),
	regenerate: key.NewBinding(key.WithKeys("r")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
