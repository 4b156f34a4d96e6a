package cli

// Panel identifies what the open account dialog shows.
type Panel int

const (
	PanelSignIn Panel = iota
	PanelSignUp
	PanelSummary
)

// Mode is the form requested when opening the dialog or switching tabs.
type Mode string

const (
	ModeSignIn Mode = "signin"
	ModeSignUp Mode = "signup"
)

// DialogState is the account dialog state: closed, or open on one panel with
// an optional inline message. It is plain data; the transition functions
// below never touch storage or I/O.
type DialogState struct {
	Open    bool
	Panel   Panel
	Message string
}

// OpenDialog opens the dialog. A signed-in visitor always lands on the
// summary panel, whatever mode was requested; otherwise the requested form
// is shown with a clean message slot.
func OpenDialog(s DialogState, mode Mode, signedIn bool) DialogState {
	s.Open = true
	s.Message = ""
	switch {
	case signedIn:
		s.Panel = PanelSummary
	case mode == ModeSignUp:
		s.Panel = PanelSignUp
	default:
		s.Panel = PanelSignIn
	}
	return s
}

// SwitchTab flips between the sign-in and sign-up forms and clears any
// inline message. It has no effect while the dialog is closed or showing the
// signed-in summary.
func SwitchTab(s DialogState, mode Mode) DialogState {
	if !s.Open || s.Panel == PanelSummary {
		return s
	}
	s.Message = ""
	if mode == ModeSignUp {
		s.Panel = PanelSignUp
	} else {
		s.Panel = PanelSignIn
	}
	return s
}

// CloseDialog closes the dialog unconditionally without touching any data.
func CloseDialog(s DialogState) DialogState {
	s.Open = false
	s.Message = ""
	return s
}

// WithMessage returns s with the inline form message set.
func WithMessage(s DialogState, msg string) DialogState {
	s.Message = msg
	return s
}
