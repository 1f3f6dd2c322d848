// Command singlish is an interactive Singlish typing console.
//
// Every input line is converted to Unicode Sinhala and to DL-Manel legacy
// text. Lines starting with ':' are commands, see ':help'.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sinhala"
	"github.com/npillmayer/sinhala/preview"
	"github.com/npillmayer/sinhala/tables"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/pterm/pterm"
)

// tracer traces with key 'sinhala'
func tracer() tracing.Trace {
	return tracing.Select("sinhala")
}

func main() {
	initDisplay()
	if err := mainE(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func mainE() error {
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.sinhala":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	fs := ff.NewFlagSet("singlish")
	var (
		tlevel  = fs.StringEnumLong("trace", "trace level", "Error", "Info", "Debug")
		mode    = fs.StringEnumLong("mode", "insert mode", string(preview.ModeLegacy), string(preview.ModeUnicode))
		backend = fs.StringEnumLong("backend", "rule lookup backend", sinhala.BackendTrie, sinhala.BackendDAT)
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("SINGLISH")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}

	engine, err := tables.NewEngine(sinhala.WithBackend(*backend))
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}
	pterm.Info.Println("Welcome to the Singlish console") // colored welcome message
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "si > ",
		AutoComplete: completer,
	})
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{repl: repl, engine: engine, mode: preview.Mode(*mode)}
	//
	// start receiving input
	pterm.Info.Println("Quit with <ctrl>D or :quit, help with :help")
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem(":mode",
		readline.PcItem("legacy"),
		readline.PcItem("unicode"),
	),
	readline.PcItem(":decode"),
	readline.PcItem(":keys"),
	readline.PcItem(":help"),
	readline.PcItem(":quit"),
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	engine *tables.Engine
	mode   preview.Mode
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
