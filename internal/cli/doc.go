// Package cli implements the ssh-keygen-pro command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to an exported function for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Orchestration (Generate, Init, Inspect, doctor)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command performs key generation directly, so the common case
// needs no subcommand at all:
//
//	ssh-keygen-pro [user-id] [unique-id] [algorithm]  - Generate a key pair set
//	ssh-keygen-pro init                               - Create .ssh-keygen-pro.yaml config
//	ssh-keygen-pro inspect <file>                     - Show details of a public key
//	ssh-keygen-pro doctor                             - Diagnose issues
//	ssh-keygen-pro version                            - Print version info
//	ssh-keygen-pro completion                         - Shell completion scripts
//
// # Generation Pipeline
//
// The Generate function handles the phases shared by every invocation:
//
//  1. Load and validate config
//  2. Resolve the three inputs (args, prompts, defaults)
//  3. Map the algorithm to ssh-keygen parameters
//  4. Invoke ssh-keygen twice (passphrase variant, then automation variant)
//  5. Report the four generated file paths
//
// Commands use GenerateOptions to carry dependencies through these phases,
// which lets tests substitute the prompter and the process runner.
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Generation flags like --dir and --keygen-bin
// are defined on the root command only.
//
// Arguments after a literal "--" are never interpreted here; they are handed
// to ssh-keygen verbatim on every invocation.
package cli
