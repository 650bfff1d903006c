package termui

// Utilities for interactive command line interfaces.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/tnet"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var stdpromptTemplate = "%s> " // colored below, filled in via fmt.Sprintf
var stdprompt = prtxt.FgGreen.Sprint(stdpromptTemplate)

// ErrUsage is returned by interpreters for statements with missing or
// superfluous arguments. The REPL will follow up with help for the statement.
var ErrUsage = errors.New("usage")

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter and report errors.
type REPLCommandInterpreter interface {
	InterpretCommand(string) error
}

// HelpFunc prints help for the statements of an interpreter. An empty topic
// asks for an overview of all statements.
type HelpFunc func(w io.Writer, topic string)

// console is the part of a readline instance the command dispatcher needs.
type console interface {
	SetPrompt(string)
	SetVimMode(bool)
	IsVimMode() bool
}

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      HelpFunc               // print out help information
	readline    *readline.Instance
	console     console
	stderr      io.Writer
	toolname    string
	version     string
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version. The command history is kept in histdir, or in the
// temp directory if histdir is empty. Interpreter commands are offered for completion.
func NewBaseREPL(toolname, version, histdir string, commands ...string) (*BaseREPL, error) {
	if histdir == "" {
		histdir = os.TempDir()
	}
	rl, err := newReadline(toolname, histdir, commands)
	if err != nil {
		return nil, err
	}
	repl := &BaseREPL{
		readline: rl,
		console:  rl,
		stderr:   rl.Stderr(),
		toolname: toolname,
		version:  version,
	}
	return repl, nil
}

// Create a readline instance.
func newReadline(toolname, histdir string, commands []string) (*readline.Instance, error) {
	histfile := filepath.Join(histdir, toolname+"-repl-history.tmp")
	prompt := fmt.Sprintf(stdprompt, toolname)
	return readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter(commands),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
}

// Stdout returns the output stream interpreters should write results to.
func (repl *BaseREPL) Stdout() io.Writer {
	return repl.readline.Stdout()
}

// --- Administrative commands -----------------------------------------------

// adminCommand is an interactive sub-command handled by the REPL itself.
// run returns true if the REPL should terminate.
type adminCommand struct {
	name  string
	args  string
	help  string
	modes []string // completion candidates for the first argument
	run   func(repl *BaseREPL, args []string) bool
}

var adminCommands []adminCommand

func init() {
	adminCommands = []adminCommand{
		{"help", "[statement]", "print this message or help for a statement", nil, (*BaseREPL).help},
		{"bye", "", "quit application", nil, (*BaseREPL).bye},
		{"mode", "[vi|emacs]", "display or set current editing mode", []string{"vi", "emacs"}, (*BaseREPL).mode},
		{"setprompt", "[prompt]", "set current prompt [to default]", nil, (*BaseREPL).setPrompt},
	}
}

func lookupAdminCommand(name string) (adminCommand, bool) {
	for _, c := range adminCommands {
		if c.name == name {
			return c, true
		}
	}
	return adminCommand{}, false
}

// Completer-tree for administrative sub-commands and interpreter commands
func replCompleter(commands []string) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, c := range adminCommands {
		var modes []readline.PrefixCompleterInterface
		for _, m := range c.modes {
			modes = append(modes, readline.PcItem(m))
		}
		items = append(items, readline.PcItem(c.name, modes...))
	}
	for _, c := range commands {
		items = append(items, readline.PcItem(c))
	}
	return readline.NewPrefixCompleter(items...)
}

func (repl *BaseREPL) help(args []string) bool {
	if len(args) > 0 {
		if repl.Helper != nil {
			repl.Helper(repl.stderr, args[0])
		}
		return false
	}
	fmt.Fprintf(repl.stderr, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(repl.stderr, "\n\nThe following commands are available:\n\n")
	for _, c := range adminCommands {
		fmt.Fprintf(repl.stderr, "  %-10s %-12s : %s\n", c.name, c.args, c.help)
	}
	if repl.Helper != nil {
		repl.Helper(repl.stderr, "")
	}
	return false
}

func (repl *BaseREPL) bye(args []string) bool {
	io.WriteString(repl.stderr, "> goodbye!\n")
	return true
}

func (repl *BaseREPL) mode(args []string) bool {
	if len(args) > 0 {
		switch args[0] {
		case "vi":
			repl.console.SetVimMode(true)
			return false
		case "emacs":
			repl.console.SetVimMode(false)
			return false
		}
		fmt.Fprintf(repl.stderr, "> unknown input mode: %s\n", args[0])
	}
	mode := "emacs"
	if repl.console.IsVimMode() {
		mode = "vi"
	}
	fmt.Fprintf(repl.stderr, "> current input mode: %s\n", mode)
	return false
}

func (repl *BaseREPL) setPrompt(args []string) bool {
	if len(args) == 0 {
		repl.console.SetPrompt(fmt.Sprintf(stdprompt, repl.toolname))
		return false
	}
	repl.console.SetPrompt(strings.Join(args, " ") + " ")
	return false
}

// --- Main loop -------------------------------------------------------------

// Prompt enters a REPL and executes commands.
// Commands are either internal administrative (setprompt, help, etc.)
// or interpreted statements.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.stderr, welcomeMessage+"\n", repl.toolname, repl.version)
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if repl.dispatch(line) {
			break
		}
	}
	if exitOnBye {
		tnet.Exit(0)
	}
}

// dispatch executes an administrative command or hands a statement to the
// interpreter. If it returns true, the REPL should terminate.
func (repl *BaseREPL) dispatch(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	if c, ok := lookupAdminCommand(words[0]); ok {
		return c.run(repl, words[1:])
	}
	if repl.Interpreter == nil {
		return false
	}
	trace().Debugf("call interpreter on: '%s'", line)
	if err := repl.Interpreter.InterpretCommand(strings.TrimSpace(line)); err != nil {
		trace().Errorf("%q: %v", line, err)
		fmt.Fprintf(repl.stderr, "interpreter error: %v\n", err)
		if errors.Is(err, ErrUsage) && repl.Helper != nil {
			repl.Helper(repl.stderr, words[0])
		}
	}
	return false
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
