package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"securechat/internal/domain"
)

// stdinPrompter resolves the interactive logout choice on the terminal.
type stdinPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *stdinPrompter) ConfirmLogout(ctx context.Context) (domain.LogoutChoice, error) {
	fmt.Fprintln(p.out, "Private keys are stored on this device. Without them, encrypted history cannot be read again.")
	fmt.Fprint(p.out, "[e]xport keys and log out, [l]og out without exporting, [a]bort? ")

	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return domain.AbortLogout, err
		}
		// EOF reads as abort: no answer, no state change.
		return domain.AbortLogout, nil
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "e", "export":
		return domain.ExportAndLogout, nil
	case "l", "logout":
		return domain.LogoutOnly, nil
	default:
		return domain.AbortLogout, nil
	}
}
