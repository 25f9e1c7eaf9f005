package session

import "fmt"

type CommandKind int

const (
	CmdFinish CommandKind = iota
	CmdPause
	CmdResume
	CmdTogglePause
	CmdReveal
	CmdRestart
)

func (k CommandKind) String() string {
	switch k {
	case CmdFinish:
		return "finish"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdReveal:
		return "reveal"
	case CmdRestart:
		return "restart"
	default:
		return fmt.Sprintf("command(%d)", int(k))
	}
}

// Command is a user action applied to a session. N is only used by CmdReveal,
// where 0 reveals every epicycle.
type Command struct {
	Kind CommandKind
	N    int
}

func Finish() Command      { return Command{Kind: CmdFinish} }
func Pause() Command       { return Command{Kind: CmdPause} }
func Resume() Command      { return Command{Kind: CmdResume} }
func TogglePause() Command { return Command{Kind: CmdTogglePause} }
func Restart() Command     { return Command{Kind: CmdRestart} }
func Reveal(n int) Command { return Command{Kind: CmdReveal, N: n} }

// Apply validates cmd against the session state and executes it.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdFinish:
		return s.Finish()
	case CmdPause:
		s.paused = true
	case CmdResume:
		s.paused = false
	case CmdTogglePause:
		s.paused = !s.paused
	case CmdReveal:
		if s.phase != PhaseReconstructing {
			return fmt.Errorf("reveal: %w (%s)", ErrWrongPhase, s.phase)
		}
		if cmd.N < 0 || cmd.N > s.coeffs.Len() {
			return fmt.Errorf("%w: reveal %d outside [0, %d]", ErrInvalidCommand, cmd.N, s.coeffs.Len())
		}
		s.visible = cmd.N
	case CmdRestart:
		return s.Restart()
	default:
		return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd.Kind)
	}
	s.log.Debug("command applied", "command", cmd.Kind.String(), "n", cmd.N)
	return nil
}
