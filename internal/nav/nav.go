// Package nav holds the shell's screen state machine.
package nav

// Screen identifies one full-page view owned by the shell.
type Screen string

const (
	Login  Screen = "login"
	SignUp Screen = "signup"
	Help   Screen = "help"
)

// Screens returns the closed set of screens in display order.
func Screens() []Screen {
	return []Screen{Login, SignUp, Help}
}

func (s Screen) String() string { return string(s) }

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	switch s {
	case Login, SignUp, Help:
		return true
	}
	return false
}

// Title is the heading shown for the screen.
func (s Screen) Title() string {
	switch s {
	case Login:
		return "Login"
	case SignUp:
		return "Create Account"
	case Help:
		return "Help Terminal"
	}
	return string(s)
}

// Navigator tracks the active screen and the screen Help was opened from.
// The zero value is not ready; use New.
type Navigator struct {
	current Screen
	origin  Screen
}

func New() *Navigator {
	return &Navigator{current: Login, origin: Login}
}

func (n *Navigator) Current() Screen { return n.current }

// Origin is the screen Back returns to while Help is active.
func (n *Navigator) Origin() Screen { return n.origin }

func (n *Navigator) GoToLogin() {
	n.current = Login
	n.origin = Login
}

func (n *Navigator) GoToSignUp() {
	n.current = SignUp
	n.origin = Login
}

func (n *Navigator) GoToHelp() {
	if n.current != Help {
		n.origin = n.current
	}
	n.current = Help
}

// Back leaves Help for the screen it was opened from. Outside Help it
// returns to Login.
func (n *Navigator) Back() {
	if n.current != Help {
		n.GoToLogin()
		return
	}
	target := n.origin
	if target == SignUp {
		n.GoToSignUp()
		return
	}
	n.GoToLogin()
}

// Go moves to s. Unknown screens are ignored and reported as false.
func (n *Navigator) Go(s Screen) bool {
	switch s {
	case Login:
		n.GoToLogin()
	case SignUp:
		n.GoToSignUp()
	case Help:
		n.GoToHelp()
	default:
		return false
	}
	return true
}
