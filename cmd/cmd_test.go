package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand runs the root command with args and returns its output.
// Flags are reset afterwards since the command tree is shared between tests.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logrus.SetOutput(io.Discard)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(new(bytes.Buffer))
	cmd.SetArgs(args)

	t.Cleanup(func() {
		resetCommand(cmd)
		cmd.SetIn(nil)
	})

	err := cmd.Execute()
	return buf.String(), err
}

// resetCommand restores flag defaults and clears the context cobra hands
// down to subcommands on execution
func resetCommand(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	cmd.SetContext(nil)
	for _, child := range cmd.Commands() {
		resetCommand(child)
	}
}
