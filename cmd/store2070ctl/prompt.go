package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readSecrets prompts for each label in turn. On a terminal input is not
// echoed; otherwise (pipes, tests) one line is read per label.
func readSecrets(cmd *cobra.Command, labels ...string) ([]string, error) {
	out := make([]string, 0, len(labels))

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		for _, label := range labels {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", strings.ToLower(label), err)
			}
			out = append(out, string(b))
		}
		return out, nil
	}

	r := bufio.NewReader(cmd.InOrStdin())
	for _, label := range labels {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		out = append(out, strings.TrimRight(line, "\r\n"))
	}
	return out, nil
}
