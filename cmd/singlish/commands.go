package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/sinhala/preview"
	"github.com/pterm/pterm"
)

const (
	CONVERT int = iota // plain input line
	QUIT
	HELP
	MODE
	DECODE
	KEYS
)

var opMap = map[string]int{
	"quit":   QUIT,
	"q":      QUIT,
	"help":   HELP,
	"mode":   MODE,
	"decode": DECODE,
	"keys":   KEYS,
}

type Command struct {
	code int
	arg  string
}

var ErrUnknownCommand = errors.New("unknown command")

// parseCommand splits an input line into a command and its argument.
// Lines not starting with ':' are text to convert, taken verbatim.
func parseCommand(line string) (Command, error) {
	if !strings.HasPrefix(line, ":") {
		return Command{code: CONVERT, arg: line}, nil
	}
	name, arg, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return Command{code: code, arg: strings.TrimSpace(arg)}, nil
}

var commandFn = map[int]func(*Intp, Command) (error, bool){
	CONVERT: convertOp,
	QUIT:    quitOp,
	HELP:    helpOp,
	MODE:    modeOp,
	DECODE:  decodeOp,
	KEYS:    keysOp,
}

func (intp *Intp) execute(cmd Command) (error, bool) {
	tracer().Debugf("cmd = %v", cmd)
	f, ok := commandFn[cmd.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", cmd.code), false
	}
	return f(intp, cmd)
}

func convertOp(intp *Intp, cmd Command) (error, bool) {
	out := preview.Compute(intp.engine, cmd.arg, intp.mode)
	data := [][]string{
		{"Unicode", out.Unicode},
		{"DL-Manel", out.Display},
		{"Insert (" + string(out.Mode) + ")", out.Insert},
	}
	pterm.DefaultTable.WithData(data).Render()
	return nil, false
}

func quitOp(intp *Intp, cmd Command) (error, bool) {
	return nil, true
}

func modeOp(intp *Intp, cmd Command) (error, bool) {
	if cmd.arg == "" {
		pterm.Printf("insert mode is %s\n", intp.mode)
		return nil, false
	}
	mode, err := preview.ParseMode(cmd.arg)
	if err != nil {
		return err, false
	}
	intp.mode = mode
	pterm.Info.Printf("insert mode set to %s\n", mode)
	return nil, false
}

func decodeOp(intp *Intp, cmd Command) (error, bool) {
	u := preview.DecodePasted(intp.engine, cmd.arg)
	if u == "" {
		return errors.New("nothing to decode"), false
	}
	pterm.Println(u)
	return nil, false
}

func keysOp(intp *Intp, cmd Command) (error, bool) {
	table := intp.engine.Singlish.Table()
	keys := table.Completions(cmd.arg)
	if len(keys) == 0 {
		pterm.Printf("no keys start with %q\n", cmd.arg)
		return nil, false
	}
	data := [][]string{{"Key", "Sinhala"}}
	for _, key := range keys {
		rule, _, _ := table.Match(key)
		data = append(data, []string{key, rule.Text})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func helpOp(intp *Intp, cmd Command) (error, bool) {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>                   convert Singlish text
	:mode [legacy|unicode]   show or set the insert mode
	:decode <legacy text>    convert pasted DL-Manel text to Unicode
	:keys <prefix>           list Singlish keys starting with prefix
	:quit                    leave the console
	`)
	return nil, false
}
