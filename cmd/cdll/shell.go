package main

import (
	"bufio"
	"cdll/list"
	"cdll/utils/errs"
	"cdll/utils/term"
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strconv"
	"strings"
)

const shellHelp = `commands:
  pushf V      insert V at the front
  pushb V      insert V at the back
  popf, popb   remove from the front / back
  front, back  show the front / back value
  at I         show the value at index I (negative counts from the back)
  set I V      overwrite the value at index I
  fill N V     replace the list with N copies of V
  len, empty   show the size / whether the list is empty
  release      remove every value
  print        show the list
  hop N        step forward N times from the front
  rhop N       step backward N times from the back
  help, quit
`

// maxFill bounds `fill` so a typo cannot stall the shell.
const maxFill = 1 << 16

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "edit a list of strings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := !opt.NoPrompt && term.IsTerminal(os.Stdin)
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
	},
}

func init() {
	RootCmd.AddCommand(shellCmd)
	shellCmd.Flags().BoolVar(&opt.NoPrompt, "no-prompt", false, "never print the prompt")
}

type shell struct {
	l   *list.CircularList[string]
	out io.Writer
}

// runShell executes one command per input line until quit or end of input.
// Failed commands are reported and the shell carries on.
func runShell(in io.Reader, out io.Writer, prompt bool) error {
	sh := &shell{l: list.New[string](), out: out}
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := sh.exec(fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (sh *shell) exec(name string, args []string) error {
	switch name {
	case "pushf", "pushb":
		if len(args) == 0 {
			return usage(name + " V")
		}
		v := strings.Join(args, " ")
		if name == "pushf" {
			sh.l.PushFront(v)
		} else {
			sh.l.PushBack(v)
		}
	case "popf", "popb":
		pop := sh.l.PopFront
		if name == "popb" {
			pop = sh.l.PopBack
		}
		v, err := pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "popped %s\n", v)
	case "front", "back":
		get := sh.l.Front
		if name == "back" {
			get = sh.l.Back
		}
		v, err := get()
		if err != nil {
			return err
		}
		fmt.Fprintln(sh.out, v)
	case "at":
		if len(args) != 1 {
			return usage("at I")
		}
		i, err := atoi(args[0])
		if err != nil {
			return err
		}
		v, err := sh.l.At(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(sh.out, v)
	case "set":
		if len(args) < 2 {
			return usage("set I V")
		}
		i, err := atoi(args[0])
		if err != nil {
			return err
		}
		return sh.l.SetAt(i, strings.Join(args[1:], " "))
	case "fill":
		if len(args) < 2 {
			return usage("fill N V")
		}
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return errors.Wrapf(errs.ErrInvalidArgument, "count %q", args[0])
		}
		if n > maxFill {
			return errors.Wrapf(errs.ErrInvalidArgument, "count %d above %d", n, maxFill)
		}
		filled, err := list.NewFilled(uint(n), strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		sh.l.Assign(filled)
	case "len":
		fmt.Fprintln(sh.out, sh.l.Len())
	case "empty":
		fmt.Fprintln(sh.out, sh.l.Empty())
	case "release":
		sh.l.Release()
	case "print":
		_, err := sh.l.WriteTo(sh.out)
		return err
	case "hop", "rhop":
		if len(args) != 1 {
			return usage(name + " N")
		}
		n, err := atoi(args[0])
		if err != nil {
			return err
		}
		if name == "hop" {
			return sh.hop(sh.l.Begin(), n, (*list.Iterator[string]).Next)
		}
		return sh.hop(sh.l.End(), n, (*list.Iterator[string]).Prev)
	case "help":
		fmt.Fprint(sh.out, shellHelp)
	default:
		return errors.Wrapf(errs.ErrInvalidArgument, "unknown command %q, try help", name)
	}
	return nil
}

// hop prints n positions visited from it, marking the head and the tail.
func (sh *shell) hop(it list.Iterator[string], n int, step func(*list.Iterator[string]) error) error {
	for i := 0; i < n; i++ {
		v, err := it.Value()
		if err != nil {
			return err
		}
		mark := ""
		if it.Equal(sh.l.Begin()) {
			mark += " head"
		}
		if it.Equal(sh.l.End()) {
			mark += " tail"
		}
		fmt.Fprintf(sh.out, "%d: %s%s\n", i, v, mark)
		if err := step(&it); err != nil {
			return err
		}
	}
	return nil
}

func usage(s string) error {
	return errors.Wrapf(errs.ErrInvalidArgument, "usage: %s", s)
}

func atoi(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errs.ErrInvalidArgument, "not a number: %q", s)
	}
	return i, nil
}
