package viz

import "github.com/san-kum/epicycles/internal/session"

// CommandForKey maps a key press to the session command it triggers.
func CommandForKey(key string) (session.Command, bool) {
	switch key {
	case " ", "space":
		return session.Finish(), true
	case "x":
		return session.Pause(), true
	case "y":
		return session.Resume(), true
	case "p":
		return session.TogglePause(), true
	case "r":
		return session.Restart(), true
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return session.Reveal(int(key[0] - '0')), true
	}
	return session.Command{}, false
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Mouse    - Hold left button to draw ║
║  Space    - Done drawing             ║
║  X / Y    - Pause / Resume           ║
║  P        - Toggle pause             ║
║  1-9      - Reveal N epicycles       ║
║  0        - Reveal all epicycles     ║
║  R        - Restart period           ║
║  C        - Toggle circles           ║
║  T        - Cycle themes             ║
║  S        - Save SVG snapshot        ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`
