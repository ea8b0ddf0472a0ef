package app

// Key binding constants used in handleKey.
const (
	KeyQuit        = "q"
	KeyCtrlC       = "ctrl+c"
	KeySpace       = " "
	KeyRecord      = "r"
	KeyTranscribe  = "t"
	KeyMakeNotes   = "n"
	KeyAsk         = "a"
	KeyExport      = "e"
	KeyEnter       = "enter"
	KeyOpen        = "o"
	KeyDelete      = "x"
	KeyDeleteAlt   = "delete"
	KeyRefresh     = "f5"
	KeyRefreshAlt  = "ctrl+r"
	KeyTheme       = "m"
	KeyTab         = "tab"
	KeyShiftTab    = "shift+tab"
	KeyUp          = "up"
	KeyDown        = "down"
	KeyJ           = "j"
	KeyK           = "k"
	KeyEsc         = "esc"
	KeyPgUp        = "pgup"
	KeyPgDown      = "pgdown"
	KeyHome        = "home"
	KeyEnd         = "end"
	KeyBackspace   = "backspace"
	KeyRecordings  = "1"
	KeyTranscripts = "2"
	KeyNotes       = "3"
)
