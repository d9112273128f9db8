package core

// IntentKind is a normalized input event, independent of the key or button
// that produced it.
type IntentKind int

const (
	IntentNone         IntentKind = iota
	IntentStart                   // Enter/Space/click while idle
	IntentRestart                 // Enter/Space/click after game over
	IntentPrimary                 // Enter/Space/click while running: jump or toggle movement
	IntentSetDirection            // Arrows/WASD
	IntentSpeedUp                 // + (reflex timer)
	IntentSpeedDown               // - (reflex timer)
	IntentExit                    // Escape: stop and return to the menu
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentStart:
		return "Start"
	case IntentRestart:
		return "Restart"
	case IntentPrimary:
		return "Primary"
	case IntentSetDirection:
		return "SetDirection"
	case IntentSpeedUp:
		return "SpeedUp"
	case IntentSpeedDown:
		return "SpeedDown"
	case IntentExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Direction is a grid heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit grid step for the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// Intent is one input event delivered to a game.
type Intent struct {
	Kind IntentKind
	Dir  Direction // Set for IntentSetDirection
}

// Intents for the kinds that carry no payload.
var (
	Start     = Intent{Kind: IntentStart}
	Restart   = Intent{Kind: IntentRestart}
	Primary   = Intent{Kind: IntentPrimary}
	SpeedUp   = Intent{Kind: IntentSpeedUp}
	SpeedDown = Intent{Kind: IntentSpeedDown}
	Exit      = Intent{Kind: IntentExit}
)

// Steer returns a direction intent.
func Steer(d Direction) Intent {
	return Intent{Kind: IntentSetDirection, Dir: d}
}

// ResolvePrimary turns the state-independent "action" button into start,
// restart or the in-game primary action.
func ResolvePrimary(st GameState) Intent {
	switch {
	case st.Over:
		return Restart
	case !st.Running:
		return Start
	default:
		return Primary
	}
}
