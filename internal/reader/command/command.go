// Released under an MIT license. See LICENSE.

// Package command parses lines of input into operations on a session and
// renders their results.
package command

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
	"github.com/michaelmacinnis/classeditor/internal/common/type/construct"
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
	"github.com/michaelmacinnis/classeditor/internal/common/validate"
	"github.com/michaelmacinnis/classeditor/internal/engine"
)

const (
	// OK is the output of a successful mutation.
	OK = "OK"
	// Error starts the output of every failed command.
	Error = "Error, "
	// Separator separates lines of output.
	Separator = "\n"

	// NotFound is the output for an unrecognized line.
	NotFound = Error + "command not found!"
)

const (
	cname = `(` + validate.ConstructPattern + `)`
	mname = `(` + validate.MemberPattern + `)`
	tname = `(` + validate.TypePattern + `)`

	modifiers = `(private |protected |public )?(final )?`
	params    = `\(((?:` + validate.TypePattern + `)(?:,` + validate.TypePattern + `)*)?\)`
)

type action func(d *T, args []string) string

type command struct {
	name    string
	pattern *regexp.Regexp
	action  action
}

//nolint:gochecknoglobals
var commands = []command{
	define("add-construct", ` (class|interface|enum) `+cname, addConstruct),
	define("add-extends", ` `+cname+` `+cname, addExtends),
	define("add-implements", ` `+cname+` `+cname, addImplements),
	define("add-attribute", ` `+cname+`:: `+modifiers+tname+` `+mname, addAttribute),
	define("add-method", ` `+cname+`:: `+modifiers+mname+params+`:`+tname, addMethod),
	define("list-constructs", `(?: (\S+))?`, listConstructs),
	define("list-attributes", ` `+cname, list((*engine.T).ListOwnAttributes, "attributes")),
	define("list-methods", ` `+cname, list((*engine.T).ListOwnMethods, "methods")),
	define("find-method-by-name", ` `+cname+`::`+mname, findMethodByName),
	define("list-all-attributes", ` `+cname, list((*engine.T).ListAllAttributes, "attributes")),
	define("list-shadowing-attributes", ` `+cname, list((*engine.T).ListShadowingAttributes, "attributes")),
	define("list-all-methods", ` `+cname, list((*engine.T).ListAllMethods, "methods")),
	define("find-method-override", ` `+cname+`::`+mname+params+`:`+tname, findMethodOverride),
	define("quit", ``, quit),
}

func define(name, args string, a action) command {
	return command{
		name:    name,
		pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(name) + args + `$`),
		action:  a,
	}
}

// Names returns the name of every command.
func Names() []string {
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.name
	}

	return names
}

// T (command) dispatches lines of input to a session.
type T struct {
	e   *engine.T
	log *slog.Logger
}

type dispatcher = T

// New creates a dispatcher for the session e.
func New(e *engine.T, log *slog.Logger) *dispatcher {
	if log == nil {
		log = slog.Default()
	}

	return &dispatcher{e: e, log: log}
}

// Active returns true while the session accepts commands.
func (d *dispatcher) Active() bool {
	return d.e.IsActive()
}

// Commands returns the name of every command.
func (d *dispatcher) Commands() []string {
	return Names()
}

// Names returns the name of every construct in the session.
func (d *dispatcher) Names() []string {
	return d.e.Registry().Names()
}

// Engine returns the session commands are dispatched to.
func (d *dispatcher) Engine() *engine.T {
	return d.e
}

// Execute runs the command on line. It returns the output and whether
// there is any. Once the session has exited nothing is executed.
func (d *dispatcher) Execute(line string) (string, bool) {
	if !d.e.IsActive() {
		return "", false
	}

	for _, cmd := range commands {
		args := cmd.pattern.FindStringSubmatch(line)
		if args == nil {
			continue
		}

		out := cmd.action(d, args[1:])

		return out, out != ""
	}

	d.log.Debug("unrecognized input", slog.String("line", adapted.CanonicalString(line)))

	return NotFound, true
}

func addConstruct(d *dispatcher, args []string) string {
	k, err := construct.ParseKind(args[0])
	if err != nil {
		return Error + "an unknown error occurred"
	}

	if err = d.e.Register(k, args[1]); err != nil {
		return Error + "given " + k.String() + " could not be added"
	}

	return OK
}

func addExtends(d *dispatcher, args []string) string {
	if d.e.Construct(args[0]) == nil {
		return Error + "no child class with name " + args[0] + " found"
	}

	if d.e.Construct(args[1]) == nil {
		return Error + "no parent class with name " + args[1] + " found"
	}

	if err := d.e.TryExtend(args[0], args[1]); err != nil {
		return Error + "parent class could not be added"
	}

	return OK
}

func addImplements(d *dispatcher, args []string) string {
	if d.e.Construct(args[0]) == nil {
		return Error + "no class with that name found"
	}

	if d.e.Construct(args[1]) == nil {
		return Error + "no interface with that name found"
	}

	if err := d.e.TryImplement(args[0], args[1]); err != nil {
		return Error + "interface could not be added"
	}

	return OK
}

func addAttribute(d *dispatcher, args []string) string {
	if d.e.Construct(args[0]) == nil {
		return Error + "no construct with that name found"
	}

	v, f, err := parseModifiers(args[1], args[2])
	if err != nil {
		return Error + "could not parse modifiers or type"
	}

	ty, err := d.e.ResolveType(args[3])
	if err != nil {
		return Error + "could not parse modifiers or type"
	}

	if err = d.e.AddAttribute(args[0], v, f, ty, args[4]); err != nil {
		return Error + "could not add attribute"
	}

	return OK
}

func addMethod(d *dispatcher, args []string) string {
	if d.e.Construct(args[0]) == nil {
		return Error + "no construct with that name found"
	}

	v, f, err := parseModifiers(args[1], args[2])
	if err != nil {
		return Error + "could not parse modifiers or type"
	}

	ps, r, err := d.signature(args[4], args[5])
	if err != nil {
		return Error + "could not parse modifiers or type"
	}

	overridden, err := d.e.AddMethod(args[0], v, f, args[3], ps, r)

	switch {
	case failure.Is(err, failure.FinalViolation):
		return Error + failure.Message(err)
	case err != nil:
		return Error + "could not add method"
	case overridden != nil:
		return "Override " + overridden.Signature()
	}

	return OK
}

func listConstructs(d *dispatcher, args []string) string {
	var cs []string

	if args[0] == "" {
		cs = d.e.ListConstructs()
	} else {
		var err error

		cs, err = d.e.MatchConstructs(args[0])
		if err != nil {
			return Error + "invalid pattern"
		}
	}

	if len(cs) == 0 {
		return Error + "no constructs available"
	}

	return strings.Join(cs, Separator)
}

func list(op func(*engine.T, string) ([]string, error), what string) action {
	return func(d *dispatcher, args []string) string {
		out, err := op(d.e, args[0])
		if err != nil {
			return Error + "could not find construct"
		}

		if len(out) == 0 {
			return Error + "no " + what + " found"
		}

		return strings.Join(out, Separator)
	}
}

func findMethodByName(d *dispatcher, args []string) string {
	out, err := d.e.FindMethodByName(args[0], args[1])
	if err != nil {
		return Error + "no construct with that name found"
	}

	if len(out) == 0 {
		return Error + "no methods with that name found"
	}

	return strings.Join(out, Separator)
}

func findMethodOverride(d *dispatcher, args []string) string {
	if d.e.Construct(args[0]) == nil {
		return Error + "could not find construct"
	}

	ps, r, err := d.signature(args[2], args[3])
	if err != nil {
		return Error + "could not parse types"
	}

	out, err := d.e.FindMethodOverride(args[0], args[1], ps, r)
	if err != nil {
		return Error + "could not find construct"
	}

	if len(out) == 0 {
		return Error + "nothing found"
	}

	return strings.Join(out, Separator)
}

func quit(d *dispatcher, _ []string) string {
	d.e.Quit()

	return ""
}

func (d *dispatcher) signature(list, result string) ([]typ.I, typ.I, error) {
	ps := []typ.I{}

	if list != "" {
		for _, name := range strings.Split(list, ",") {
			p, err := d.e.ResolveType(name)
			if err != nil {
				return nil, nil, err
			}

			ps = append(ps, p)
		}
	}

	r, err := d.e.ResolveReturnType(result)
	if err != nil {
		return nil, nil, err
	}

	return ps, r, nil
}

func parseModifiers(v, f string) (visibility.T, finality.T, error) {
	vis, err := visibility.Parse(v)
	if err != nil {
		return vis, finality.NotFinal, err
	}

	fin, err := finality.Parse(f)

	return vis, fin, err
}
