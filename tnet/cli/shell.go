package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/tnet/index"
	"github.com/npillmayer/tnet/index/idgen"
	"github.com/npillmayer/tnet/index/namepat"
	"github.com/npillmayer/tnet/indexset"
	"github.com/npillmayer/tnet/tnet/ui/termui"
)

// indexShell interprets statements operating on a workspace of indices.
// The workspace is an index set; statements which change indices change the
// legs of this set.
type indexShell struct {
	legs   *indexset.IndexSet
	gen    idgen.Generator
	out    io.Writer
	format termui.Formatter
}

var _ termui.REPLCommandInterpreter = (*indexShell)(nil)

func newIndexShell(out io.Writer) *indexShell {
	return &indexShell{
		legs:   indexset.Must(indexset.New()),
		gen:    idgen.Default(),
		out:    out,
		format: Formatter{},
	}
}

// ErrUsage is returned for statements with missing or superfluous arguments.
var ErrUsage = termui.ErrUsage

type statement struct {
	name  string
	args  string
	help  string
	nargs [2]int // min and max number of arguments
	exec  func(sh *indexShell, args []string) (interface{}, error)
}

var statements = []statement{
	{"index", "<name> <dim> [type]", "create an index and add it to the workspace", [2]int{2, 3}, (*indexShell).newIndex},
	{"sim", "<name> [plev]", "create an index similar to an existing one", [2]int{1, 2}, (*indexShell).sim},
	{"parse", "<pattern>", "display the parts of a name pattern", [2]int{1, 1}, (*indexShell).parse},
	{"match", "<pattern>", "list all indices matching a pattern", [2]int{1, 1}, (*indexShell).match},
	{"prime", "<pattern> [inc]", "prime all indices matching a pattern", [2]int{1, 2}, (*indexShell).prime},
	{"primetype", "<type> [inc]", "prime all indices of a type", [2]int{1, 2}, (*indexShell).primeType},
	{"mapprime", "<from> <to> [type]", "map prime levels", [2]int{2, 3}, (*indexShell).mapPrime},
	{"rename", "<from> <to>", "rename all indices matching a pattern", [2]int{2, 2}, (*indexShell).rename},
	{"sort", "", "sort the workspace canonically", [2]int{0, 0}, (*indexShell).sort},
	{"strides", "", "display strides of the workspace legs", [2]int{0, 0}, (*indexShell).strides},
	{"show", "[name]", "display the workspace or an index", [2]int{0, 1}, (*indexShell).show},
	{"save", "<file>", "write the workspace to a file", [2]int{1, 1}, (*indexShell).save},
	{"load", "<file>", "add indices from a file to the workspace", [2]int{1, 1}, (*indexShell).load},
}

func lookupStatement(name string) (statement, bool) {
	for _, s := range statements {
		if s.name == name {
			return s, true
		}
	}
	return statement{}, false
}

func statementNames() []string {
	names := make([]string, len(statements))
	for k, s := range statements {
		names[k] = s.name
	}
	return names
}

// displayStatements prints help for a statement, or for all statements if
// topic is empty.
func displayStatements(w io.Writer, topic string) {
	if topic != "" {
		s, ok := lookupStatement(topic)
		if !ok {
			fmt.Fprintf(w, "no statement %q, type 'help' for a list\n", topic)
			return
		}
		fmt.Fprintf(w, "  %s %s : %s\n", s.name, s.args, s.help)
		return
	}
	io.WriteString(w, "\nThe index shell will interpret the following statements:\n\n")
	for _, s := range statements {
		fmt.Fprintf(w, "  %-10s %-20s : %s\n", s.name, s.args, s.help)
	}
	io.WriteString(w, "\nTypes are Link or Site, type All selects every index.\n\n")
}

// InterpretCommand evaluates a statement and prints the result.
func (sh *indexShell) InterpretCommand(command string) error {
	command = strings.Trim(command, "\x00")
	result, err := sh.eval(strings.Fields(command))
	if err != nil || result == nil {
		return err
	}
	if _, err := sh.format.Format(result, sh.out); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func (sh *indexShell) eval(words []string) (interface{}, error) {
	if len(words) == 0 {
		return nil, nil
	}
	s, ok := lookupStatement(words[0])
	if !ok {
		return nil, fmt.Errorf("command not found: %s", words[0])
	}
	args := words[1:]
	if len(args) < s.nargs[0] || len(args) > s.nargs[1] {
		return nil, fmt.Errorf("%w: %s %s", ErrUsage, s.name, s.args)
	}
	return s.exec(sh, args)
}

// --- Statements ------------------------------------------------------------

func (sh *indexShell) newIndex(args []string) (interface{}, error) {
	m, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("dimension %q: %w", args[1], err)
	}
	opts := []index.Option{index.WithGenerator(sh.gen)}
	if len(args) > 2 {
		t, err := parseType(args[2])
		if err != nil {
			return nil, err
		}
		opts = append(opts, index.WithType(t))
	}
	i, err := index.New(args[0], m, opts...)
	if err != nil {
		return nil, err
	}
	if err := sh.legs.Add(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (sh *indexShell) sim(args []string) (interface{}, error) {
	i, err := sh.lookup(args[0])
	if err != nil {
		return nil, err
	}
	plev := 0
	if len(args) > 1 {
		if plev, err = strconv.Atoi(args[1]); err != nil {
			return nil, fmt.Errorf("prime level %q: %w", args[1], err)
		}
	}
	s, err := index.Sim(i, plev, index.WithGenerator(sh.gen))
	if err != nil {
		return nil, err
	}
	if err := sh.legs.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (sh *indexShell) parse(args []string) (interface{}, error) {
	return namepat.Parse(args[0])
}

func (sh *indexShell) match(args []string) (interface{}, error) {
	selected, err := sh.legs.Select(args[0])
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func (sh *indexShell) prime(args []string) (interface{}, error) {
	inc, err := optionalInt(args, 1, 1)
	if err != nil {
		return nil, err
	}
	return counted(sh.legs.Prime(args[0], inc))
}

func (sh *indexShell) primeType(args []string) (interface{}, error) {
	t, err := parseType(args[0])
	if err != nil {
		return nil, err
	}
	inc, err := optionalInt(args, 1, 1)
	if err != nil {
		return nil, err
	}
	return counted(sh.legs.PrimeType(t, inc))
}

func (sh *indexShell) mapPrime(args []string) (interface{}, error) {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("prime level %q: %w", args[0], err)
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("prime level %q: %w", args[1], err)
	}
	t := index.All
	if len(args) > 2 {
		if t, err = parseType(args[2]); err != nil {
			return nil, err
		}
	}
	return counted(sh.legs.MapPrime(from, to, t))
}

func (sh *indexShell) rename(args []string) (interface{}, error) {
	return counted(sh.legs.Rename(args[0], args[1]))
}

func (sh *indexShell) sort(args []string) (interface{}, error) {
	sh.legs = sh.legs.Sorted()
	return sh.legs, nil
}

func (sh *indexShell) strides(args []string) (interface{}, error) {
	strides := sh.legs.Strides()
	s := make([]string, len(strides))
	for k, stride := range strides {
		s[k] = fmt.Sprintf("%s:%d", sh.legs.At(k).Name(), stride)
	}
	return fmt.Sprintf("strides %s, size %d", strings.Join(s, " "), sh.legs.Size()), nil
}

func (sh *indexShell) show(args []string) (interface{}, error) {
	if len(args) == 0 {
		return sh.legs, nil
	}
	return sh.lookup(args[0])
}

func (sh *indexShell) save(args []string) (interface{}, error) {
	f, err := os.Create(args[0])
	if err != nil {
		return nil, err
	}
	for _, i := range sh.legs.Indices() {
		if err = i.Write(f); err != nil {
			break
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%d indices written to %s", sh.legs.Rank(), args[0]), nil
}

func (sh *indexShell) load(args []string) (interface{}, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	indices, err := readIndices(f)
	if err != nil {
		return nil, err
	}
	for _, i := range indices {
		if err := sh.legs.Add(i); err != nil {
			return nil, err
		}
	}
	return fmt.Sprintf("%d indices read from %s", len(indices), args[0]), nil
}

// readIndices reads serialized indices until r is exhausted.
func readIndices(r io.Reader) ([]index.Index, error) {
	var indices []index.Index
	for {
		i, err := index.Read(r)
		if err == io.EOF {
			return indices, nil
		} else if err != nil {
			return nil, err
		}
		indices = append(indices, i)
	}
}

// --- Helpers ---------------------------------------------------------------

func (sh *indexShell) lookup(name string) (index.Index, error) {
	for _, i := range sh.legs.Indices() {
		if i.Name() == name {
			return i, nil
		}
	}
	return index.Index{}, fmt.Errorf("no index named %q in workspace", name)
}

func parseType(s string) (index.Type, error) {
	switch t := index.Type(s); t {
	case index.Link, index.Site, index.All:
		return t, nil
	}
	return index.NoType, fmt.Errorf("unknown index type %q", s)
}

func optionalInt(args []string, pos, dflt int) (int, error) {
	if len(args) <= pos {
		return dflt, nil
	}
	n, err := strconv.Atoi(args[pos])
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", args[pos], err)
	}
	return n, nil
}

func counted(n int, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return "1 index changed", nil
	}
	return fmt.Sprintf("%d indices changed", n), nil
}
