package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // config directory, e.g. $HOME/.chrono
	TZDB string // zone data: compiled archive path or sqlite database; defaults to <Home>/zones.tzdb
}
