package control

// Symbol is one discrete input understood by the controller.
type Symbol int

// Symbols accepted by Controller.Handle. None is ignored.
const (
	None Symbol = iota
	TogglePlay
	IncreaseWPM
	DecreaseWPM
	PrevWord
	NextWord
	JumpBack
	JumpForward
	Restart
	ToggleZen
	Quit
)

var symbolNames = map[Symbol]string{
	None:        "none",
	TogglePlay:  "toggle-play",
	IncreaseWPM: "increase-wpm",
	DecreaseWPM: "decrease-wpm",
	PrevWord:    "prev-word",
	NextWord:    "next-word",
	JumpBack:    "jump-back",
	JumpForward: "jump-forward",
	Restart:     "restart",
	ToggleZen:   "toggle-zen",
	Quit:        "quit",
}

// String returns the symbol name.
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown"
}
