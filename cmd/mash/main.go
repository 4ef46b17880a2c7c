// Command mash is Tlenix's shell: an interactive cooked-mode REPL built
// on pkg/console, with a small set of cobra-dispatched subcommands layered
// over it for non-interactive use (`mash exec ...`, `mash env`).
package main

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/console"
	"github.com/tlenix/tlenix/pkg/fsops"
	"github.com/tlenix/tlenix/pkg/procenv"
	"github.com/tlenix/tlenix/pkg/process"

	"github.com/sirupsen/logrus"
)

// environmentFilePath is the optional environment file: one KEY=VALUE
// per line, read once at shell startup.
const environmentFilePath = "/etc/environment"

// maxLineBytes bounds a single interactive command line, per
// console.ReadLine's max_bytes contract.
const maxLineBytes = 4096

func main() {
	log := diag.New("mash")

	root := &cobra.Command{
		Use:   "mash",
		Short: "the tlenix shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(log)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "exec [command] [args...]",
		Short: "run a single command to completion and exit with its status",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := runLine(args)
			if err != nil {
				return err
			}
			os.Exit(int(status.Code()))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "print the shell's resolved environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ev := range loadEnvironment(log) {
				os.Stdout.WriteString(ev.String() + "\n")
			}
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(diag.Fail(log, err))
	}
}

// loadEnvironment reads environmentFilePath. Failure to read yields a
// warning on stderr and an empty environment, not a fatal error.
func loadEnvironment(log *logrus.Entry) []procenv.EnvVar {
	data, err := os.ReadFile(environmentFilePath)
	if err != nil {
		log.Warnf("could not read %s: %v, starting with an empty environment", environmentFilePath, err)
		return nil
	}
	return procenv.ParseEnvFile(string(data))
}

func envSlice(vars []procenv.EnvVar) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.String()
	}
	return out
}

// cwdNameBackup is printed in the prompt when the working directory can't
// be determined.
const cwdNameBackup = "?"

// prompt renders the shell prompt, coloring the shell name blue and the
// trailing ":}" green.
func prompt() string {
	cwd, err := fsops.GetCwd()
	if err != nil {
		cwd = cwdNameBackup
	}
	return "\x1b[94mmash\x1b[0m " + cwd + " \x1b[92;1m:}\x1b[0m "
}

// runRepl drives the interactive cooked-mode loop: open the console, print
// a prompt, read a line, dispatch it, repeat until the console is closed or
// the user types "exit".
func runRepl(log *logrus.Entry) error {
	c, err := console.Open()
	if err != nil {
		return err
	}
	defer c.Close()

	env := loadEnvironment(log)

	for {
		if _, err := c.Write([]byte(prompt())); err != nil {
			return err
		}
		line, err := c.ReadLine(maxLineBytes)
		if err != nil {
			return err
		}
		if _, werr := c.Write([]byte("\n")); werr != nil {
			return werr
		}

		fields := strings.Fields(string(line))
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" {
			return nil
		}
		if fields[0] == "cd" {
			target := "/"
			if len(fields) > 1 {
				target = fields[1]
			}
			if cerr := fsops.ChangeDir(target); cerr != nil {
				c.Write([]byte("mash: cd: " + cerr.Error() + "\n"))
			}
			continue
		}

		status, rerr := executeWithEnv(fields, env)
		if rerr != nil {
			c.Write([]byte("mash: " + fields[0] + ": " + rerr.Error() + "\n"))
			continue
		}
		if !status.IsSuccess() {
			c.Write([]byte("mash: " + fields[0] + " exited with code " + strconv.Itoa(int(status.Code())) + "\n"))
		}
	}
}

// runLine is the non-interactive counterpart used by `mash exec`: resolve
// argv[0] against PATH (execve never does this itself) and run it to
// completion.
func runLine(args []string) (process.ExitStatus, error) {
	return executeWithEnv(args, procenv.ParseEnvFile(strings.Join(os.Environ(), "\n")))
}

// executeWithEnv resolves fields[0] against PATH, since execve (unlike a
// shell) never performs PATH lookup itself, then runs it via
// process.ExecuteProcess.
func executeWithEnv(fields []string, env []procenv.EnvVar) (process.ExitStatus, error) {
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return process.ExitStatus{}, err
	}
	argv := append([]string{path}, fields[1:]...)
	return process.ExecuteProcess(argv, envSlice(env))
}
