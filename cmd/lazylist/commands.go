package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/lazylist/pkg/lazylist"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const ErrBadInput errorkit.Error = "bad input"

// stdoutIsTerminal tells whether the output goes to a terminal.
// When it does, lists are printed as text unless -format asks otherwise.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func Mux() *cli.Mux {
	var m cli.Mux
	m.Handle("range", RangeCommand{})
	m.Handle("iterate", IterateCommand{})
	m.Handle("cycle", CycleCommand{})
	m.Handle("repeat", RepeatCommand{})
	m.Handle("replicate", ReplicateCommand{})
	m.Handle("subsequences", SubsequencesCommand{})
	m.Handle("permutations", PermutationsCommand{})
	m.Handle("transpose", TransposeCommand{})
	return &m
}

type RangeCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`
	Limit  int    `flag:"limit" desc:"maximum number of elements printed from an infinite list"`

	Begin int `arg:"0" required:"true" desc:"first integer"`
	End   int `arg:"1" required:"true" desc:"last integer"`
}

func (cmd RangeCommand) Summary() string { return "print the integers from begin to end" }

func (cmd RangeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	respond(w, r, cmd.Format, cmd.Limit, lazylist.Range(cmd.Begin, cmd.End))
}

type IterateCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`
	Limit  int    `flag:"limit" desc:"maximum number of elements printed from an infinite list"`

	Start int `arg:"0" default:"0" desc:"first integer"`
	Step  int `arg:"1" default:"1" desc:"difference between two consecutive integers"`
}

func (cmd IterateCommand) Summary() string { return "print the arithmetic progression of start and step" }

func (cmd IterateCommand) ServeCLI(w cli.Response, r *cli.Request) {
	respond(w, r, cmd.Format, cmd.Limit, lazylist.Iterate(cmd.Start, func(n int) int {
		return n + cmd.Step
	}))
}

type CycleCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`
	Limit  int    `flag:"limit" desc:"maximum number of elements printed from an infinite list"`
	At     int    `flag:"at" default:"-1" desc:"print only the element at this index"`

	Values string `arg:"0" required:"true" desc:"comma separated values"`
}

func (cmd CycleCommand) Summary() string { return "repeat comma separated values forever" }

func (cmd CycleCommand) ServeCLI(w cli.Response, r *cli.Request) {
	l := lazylist.Cycle(splitValues(cmd.Values))
	if cmd.At < 0 {
		respond(w, r, cmd.Format, cmd.Limit, l)
		return
	}
	v, err := l.Get(cmd.At)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := encode(w, cmd.Format, v, v); err != nil {
		fail(w, r, err)
	}
}

type RepeatCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`
	Limit  int    `flag:"limit" desc:"maximum number of elements printed from an infinite list"`

	Value string `arg:"0" required:"true"`
}

func (cmd RepeatCommand) Summary() string { return "repeat a value forever" }

func (cmd RepeatCommand) ServeCLI(w cli.Response, r *cli.Request) {
	respond(w, r, cmd.Format, cmd.Limit, lazylist.Repeat(cmd.Value))
}

type ReplicateCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`

	N     int    `arg:"0" required:"true" desc:"number of copies"`
	Value string `arg:"1" required:"true"`
}

func (cmd ReplicateCommand) Summary() string { return "repeat a value n times" }

func (cmd ReplicateCommand) ServeCLI(w cli.Response, r *cli.Request) {
	respond(w, r, cmd.Format, 0, lazylist.Replicate(cmd.Value, cmd.N))
}

type SubsequencesCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`

	Values string `arg:"0" desc:"comma separated values"`
}

func (cmd SubsequencesCommand) Summary() string { return "print every subsequence of comma separated values" }

func (cmd SubsequencesCommand) ServeCLI(w cli.Response, r *cli.Request) {
	respond(w, r, cmd.Format, 0, lazylist.Subsequences(splitValues(cmd.Values)))
}

type PermutationsCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`

	Values string `arg:"0" desc:"comma separated values"`
}

func (cmd PermutationsCommand) Summary() string { return "print every permutation of comma separated values" }

func (cmd PermutationsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	respond(w, r, cmd.Format, 0, lazylist.Permutations(splitValues(cmd.Values)))
}

type TransposeCommand struct {
	Format string `flag:"format" enum:"text,json,yaml," desc:"output format, text on a terminal and json otherwise"`

	Rows string `arg:"0" required:"true" desc:"semicolon separated rows of comma separated values, like 1,2,3;4,5"`
}

func (cmd TransposeCommand) Summary() string { return "swap the rows and the columns of a table" }

func (cmd TransposeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var rows []lazylist.List[string]
	for _, row := range strings.Split(cmd.Rows, ";") {
		rows = append(rows, splitValues(row))
	}
	respond(w, r, cmd.Format, 0, lazylist.Transpose(lazylist.FromSlice(rows)))
}

func splitValues(csv string) lazylist.List[string] {
	if csv == "" {
		return lazylist.Empty[string]()
	}
	return lazylist.FromSlice(strings.Split(csv, ","))
}

// respond prints l in the requested format.
// A list declared infinite is cut after limit elements, or after lazylist.RenderLimit when limit is not positive.
func respond[T any](w cli.Response, r *cli.Request, format string, limit int, l lazylist.List[T]) {
	if limit <= 0 {
		limit = lazylist.RenderLimit
	}
	var (
		text    = lazylist.Render(l, limit)
		encoded = l
	)
	if l.Len().IsInfinite() {
		encoded = lazylist.Take(l, limit)
	}
	if err := encode(w, format, text, encoded); err != nil {
		fail(w, r, err)
	}
}

func encode(w cli.Response, format string, text, v any) error {
	if format == "" {
		format = FormatJSON
		if stdoutIsTerminal() {
			format = FormatText
		}
	}
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, text)
		return err
	case FormatJSON:
		return json.NewEncoder(w).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrBadInput.F("unknown format: %s", strconv.Quote(format))
	}
}

func fail(w cli.Response, r *cli.Request, err error) {
	logger.Error(r.Context(), "lazylist command failed", logging.ErrField(err))
	cli.HandleError(w, r, err)
	if errors.Is(err, lazylist.ErrIndex) {
		w.ExitCode(cli.ExitCodeBadRequest)
	}
}
