package main

import (
	"cdll/list"
	"cdll/queue"
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"strings"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run a canned walkthrough of the containers",
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "constructors, ends, ranges, indexing and iteration of a list",
	Run: func(cmd *cobra.Command, args []string) {
		report(cmd.OutOrStdout(), demoList(cmd.OutOrStdout(), opt.Hops))
	},
}

var demoExceptCmd = &cobra.Command{
	Use:   "except",
	Short: "the failures a list reports on misuse",
	Run: func(cmd *cobra.Command, args []string) {
		demoExcept(cmd.OutOrStdout())
	},
}

var demoQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "constructors and FIFO order of a queue",
	Run: func(cmd *cobra.Command, args []string) {
		report(cmd.OutOrStdout(), demoQueue(cmd.OutOrStdout()))
	},
}

func init() {
	RootCmd.AddCommand(demoCmd)
	demoCmd.AddCommand(demoListCmd, demoExceptCmd, demoQueueCmd)
	demoListCmd.Flags().IntVarP(&opt.Hops, "hops", "n", 10, "iterator steps in the circularity walk")
}

func report(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "program terminated: %v\n", err)
	}
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
	for range title {
		fmt.Fprint(w, "=")
	}
	fmt.Fprintln(w)
}

func demoList(w io.Writer, hops int) error {
	heading(w, "Constructor Tests")
	letters := list.New[rune]()
	filled, err := list.NewFilled(4, 5)
	if err != nil {
		return err
	}
	strs, err := list.NewFilled(3, "Test string")
	if err != nil {
		return err
	}
	strs2 := list.NewCopy(strs)
	fmt.Fprintf(w, "empty: %sSize: %d\n", letters.Render(), letters.Len())
	fmt.Fprintf(w, "filled (4 ints, each 5): %sSize: %d\n", filled.Render(), filled.Len())
	fmt.Fprintf(w, "strings (3 copies): %sSize: %d\n", strs.Render(), strs.Len())
	fmt.Fprintf(w, "copy of strings: %sSize: %d\n", strs2.Render(), strs2.Len())

	heading(w, "Ends and Ranges")
	for c := 'A'; c <= 'H'; c++ {
		letters.PushFront(c)
	}
	fmt.Fprintf(w, "letters pushed to the front: %s\n", runes(letters))
	b := letters.Begin()
	for i := 0; i < 4; i++ {
		if err := b.Next(); err != nil {
			return err
		}
	}
	tail, err := list.NewRange(b, letters.End())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "range from the fifth letter through the last: %s\n", runes(tail))
	for i := 0; i < 3; i++ {
		c, err := letters.PopFront()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "popped %c from the front\n", c)
	}
	front, err := letters.Front()
	if err != nil {
		return err
	}
	back, err := letters.Back()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "letters: %s front %c, back %c\n", runes(letters), front, back)

	heading(w, "Remaining List Tests")
	for i := 6; i <= 8; i++ {
		filled.PushBack(i)
	}
	fmt.Fprintf(w, "filled after pushing 6..8 to the back: %s", filled.Render())
	for i := 0; i < 4; i++ {
		v, err := filled.PopBack()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "popped %d from the back\n", v)
	}
	fmt.Fprintf(w, "filled: %s", filled.Render())
	strs.Release()
	fmt.Fprintf(w, "strings after release: %sEmpty: %t\n", strs.Render(), strs.Empty())
	words := list.New[string]()
	for _, s := range []string{"this", "IS", "a", "TEST"} {
		words.PushBack(s)
	}
	strs.Assign(words)
	first, err := strs.At(0)
	if err != nil {
		return err
	}
	last, err := strs.At(-1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "strings assigned from %s: [0]=%q [-1]=%q\n", words, first, last)
	if err := strs.SetAt(1, "BE"); err != nil {
		return err
	}
	fmt.Fprintf(w, "after setting [1]: %s", strs.Render())

	heading(w, "Iteration and Circularity")
	fmt.Fprintf(w, "walking %d steps forward over %s\n", hops, runes(tail))
	if err := walk(w, tail, tail.Begin(), hops, (*list.Iterator[rune]).Next); err != nil {
		return err
	}
	fmt.Fprintf(w, "walking %d steps backward\n", hops)
	return walk(w, tail, tail.End(), hops, (*list.Iterator[rune]).Prev)
}

func walk(w io.Writer, l *list.CircularList[rune], it list.Iterator[rune], hops int, step func(*list.Iterator[rune]) error) error {
	for i := 0; i < hops; i++ {
		v, err := it.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "value: %c", v)
		if it.Equal(l.Begin()) {
			fmt.Fprint(w, "\tHead.")
		}
		if it.Equal(l.End()) {
			fmt.Fprint(w, "\tTail.")
		}
		fmt.Fprintln(w)
		if err := step(&it); err != nil {
			return err
		}
	}
	return nil
}

func runes(l *list.CircularList[rune]) string {
	values := l.Values()
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = string(v)
	}
	return "(" + strings.Join(strs, ",") + ")"
}

func demoExcept(w io.Writer) {
	empty := list.New[int]()
	fmt.Fprintf(w, "created a list of size %d, empty: %t\n", empty.Len(), empty.Empty())
	it := empty.End()
	check(w, "decrement end of an empty list", it.Prev())
	_, err := empty.PopFront()
	check(w, "pop front of an empty list", err)
	_, err = empty.Back()
	check(w, "back of an empty list", err)
	_, err = empty.At(0)
	check(w, "index 0 of an empty list", err)
	_, err = list.NewFilled(0, 1)
	check(w, "fill with zero elements", err)
}

func check(w io.Writer, what string, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s failed: %v\n", what, err)
		return
	}
	fmt.Fprintf(w, "%s succeeded\n", what)
}

func demoQueue(w io.Writer) error {
	heading(w, "Constructor Tests")
	empty := queue.New[rune]()
	filled, err := queue.NewFilled(4, 5)
	if err != nil {
		return err
	}
	strs, err := queue.NewFilled(3, "Test string")
	if err != nil {
		return err
	}
	strs2 := queue.NewCopy(strs)
	fmt.Fprintf(w, "empty: %sSize: %d\n", empty.Render(), empty.Len())
	fmt.Fprintf(w, "filled (4 ints, each 5): %sSize: %d\n", filled.Render(), filled.Len())
	fmt.Fprintf(w, "strings (3 copies): %sSize: %d\n", strs.Render(), strs.Len())
	fmt.Fprintf(w, "copy of strings: %sSize: %d\n", strs2.Render(), strs2.Len())

	heading(w, "Push and Pop")
	for c := 'A'; c <= 'E'; c++ {
		fmt.Fprintf(w, "pushing %c\n", c)
		empty.Push(c)
	}
	for !empty.Empty() {
		c, err := empty.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "popped %c, %d left\n", c, empty.Len())
	}
	strs.Release()
	fmt.Fprintf(w, "strings after release: %sEmpty: %t\n", strs.Render(), strs.Empty())
	return nil
}
