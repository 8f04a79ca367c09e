package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"

	"github.com/SixArm/ssh-keygen-pro/internal/errors"
	"github.com/SixArm/ssh-keygen-pro/internal/naming"
	"github.com/SixArm/ssh-keygen-pro/internal/ui"
	"github.com/SixArm/ssh-keygen-pro/internal/util"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <public-key-file>",
	Short: "Read a key's naming lineage out of its comment",
	Long: `Parse a public key file and split its comment back into the inputs the
key was generated from.

Generated keys carry their own file-naming stem as the comment, so a key
that has wandered away from its original path still says who and what it
was made for.

Examples:
  ssh-keygen-pro inspect 'alice@example.com=8af2...=ssh-ed25519-with-automation.pub'
  ssh-keygen-pro inspect ~/.ssh/id_ed25519.pub`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Inspect(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// Inspect parses the public key at path and writes its details and, when
// the comment is one of ours, the naming lineage.
func Inspect(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't read "+path,
			"Pass the path of a .pub file produced by this tool")
	}

	pub, comment, options, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			path+" doesn't parse as a public key",
			"Inspect the public half (the .pub file), not the private key")
	}

	fmt.Fprintf(out, "%-13s %s\n", "type:", pub.Type())
	fmt.Fprintf(out, "%-13s %s\n", "fingerprint:", ssh.FingerprintSHA256(pub))
	fmt.Fprintf(out, "%-13s %s\n", "comment:", comment)
	fmt.Fprintf(out, "%-13s %s\n", "options:", util.JoinOrNone(options))

	fields, err := naming.Split(comment)
	if err != nil {
		// Not one of ours, or an identifier ate the separator. Report
		// what we know rather than guessing at field boundaries.
		fmt.Fprintf(out, "\n%s %s\n", ui.SymbolWarning, "No naming lineage:")
		fmt.Fprintf(out, "  %s\n", errorHeadline(err))
		return nil
	}

	fmt.Fprintf(out, "\n%s Naming lineage\n", ui.SymbolSuccess)
	fmt.Fprintf(out, "  %-13s %s\n", "user:", fields.UserID)
	fmt.Fprintf(out, "  %-13s %s\n", "unique:", fields.UniqueID)
	fmt.Fprintf(out, "  %-13s %s\n", "algorithm:", fields.Algorithm)
	fmt.Fprintf(out, "  %-13s %s\n", "variant:", fields.Variant.Label())

	return nil
}

// errorHeadline trims a structured error down to its message for inline
// display, skipping the multi-line rendering meant for fatal output.
func errorHeadline(err error) string {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		return structured.Message
	}
	return err.Error()
}
