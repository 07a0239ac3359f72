package domain

// Result is the outcome of a register or login flow. Remote failures are
// folded into Message; they never escape the orchestrator as raw errors.
type Result struct {
	Success bool
	Message string
}

// LogoutChoice is the user's answer to the interactive logout prompt. A
// three-outcome type, so "declined export" is never conflated with "cancelled
// the whole operation".
type LogoutChoice int

const (
	// ExportAndLogout exports the private keys to a file, then logs out.
	ExportAndLogout LogoutChoice = iota
	// LogoutOnly logs out without exporting.
	LogoutOnly
	// AbortLogout cancels the logout; no state is modified.
	AbortLogout
)
