package slurp

// SetStdinTerminal lets tests decide whether stdin looks interactive.
func SetStdinTerminal(isTerm bool) (restore func()) {
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return isTerm }
	return func() { stdinIsTerminal = old }
}
