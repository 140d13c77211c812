// Released under an MIT license. See LICENSE.

// Package engine provides the session that owns a type hierarchy.
//
// Every operation either commits completely or returns a *failure.T and
// leaves the hierarchy untouched.
package engine

import (
	"log/slog"
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
	"github.com/michaelmacinnis/classeditor/internal/common/struct/registry"
	"github.com/michaelmacinnis/classeditor/internal/common/type/attribute"
	"github.com/michaelmacinnis/classeditor/internal/common/type/construct"
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/method"
	"github.com/michaelmacinnis/classeditor/internal/common/type/primitive"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
	"github.com/michaelmacinnis/classeditor/internal/common/validate"
	"github.com/michaelmacinnis/classeditor/internal/system/logging"
)

// State is the lifecycle of a session. It only moves from Running to Exited.
type State int

const (
	Running State = iota
	Exited
)

// T (engine) is a facade in front of the type hierarchy of one session.
type T struct {
	log      *slog.Logger
	registry *registry.T
	state    State
}

type engine = T

// New creates a new, running session. A nil logger discards everything.
func New(log *slog.Logger) *engine {
	if log == nil {
		log = logging.Discard()
	}

	return &engine{
		log:      log,
		registry: registry.New(),
		state:    Running,
	}
}

// IsActive returns true until Quit is called.
func (e *engine) IsActive() bool {
	return e.state == Running
}

// Quit ends the session.
func (e *engine) Quit() {
	if e.state != Exited {
		e.log.Debug("session exited", slog.Int("constructs", e.registry.Size()))
	}

	e.state = Exited
}

// Registry returns the session's registry.
func (e *engine) Registry() *registry.T {
	return e.registry
}

// RegisterClass adds a class named name.
func (e *engine) RegisterClass(name string) error {
	return e.Register(construct.Class, name)
}

// RegisterInterface adds an interface named name.
func (e *engine) RegisterInterface(name string) error {
	return e.Register(construct.Interface, name)
}

// RegisterEnum adds an enum named name.
func (e *engine) RegisterEnum(name string) error {
	return e.Register(construct.Enum, name)
}

// Register adds a construct of kind k named name. Names are unique across
// all kinds.
func (e *engine) Register(k construct.Kind, name string) error {
	if err := validate.ConstructName(name); err != nil {
		return e.reject("register", err)
	}

	if err := e.registry.Register(construct.New(k, name)); err != nil {
		return e.reject("register", err)
	}

	e.log.Debug("registered", slog.String("kind", k.String()), slog.String("name", name))

	return nil
}

// Construct returns the construct named name, or nil.
func (e *engine) Construct(name string) *construct.T {
	return e.registry.Get(name)
}

// ResolveType returns the type named by text. Parentheses are ignored.
// Primitive names take precedence over construct names.
func (e *engine) ResolveType(text string) (typ.I, error) {
	name := strings.NewReplacer("(", "", ")", "").Replace(text)

	if p := primitive.Lookup(name); p != nil {
		return p, nil
	}

	if c := e.registry.Get(name); c != nil {
		return c, nil
	}

	return nil, failure.Newf(failure.NotFound, "no type named %q", name)
}

// ResolveReturnType is ResolveType but also accepts void.
func (e *engine) ResolveReturnType(text string) (typ.I, error) {
	name := strings.NewReplacer("(", "", ")", "").Replace(text)
	if name == primitive.Void.Name() {
		return primitive.Void, nil
	}

	return e.ResolveType(text)
}

// AddAttribute adds an attribute to the construct named owner.
func (e *engine) AddAttribute(owner string, v visibility.T, f finality.T, t typ.I, name string) error {
	c, err := e.find(owner)
	if err != nil {
		return e.reject("add-attribute", err)
	}

	if err = usable(t, name); err == nil {
		err = value(t)
	}

	if err != nil {
		return e.reject("add-attribute", err)
	}

	a := attribute.New(owner, v, f, t, name)
	if err = c.AddAttribute(a); err != nil {
		return e.reject("add-attribute", err)
	}

	e.log.Debug("attribute added", slog.String("signature", a.Signature()))

	return nil
}

// AddMethod adds a method to the construct named owner. If the method
// overrides an inherited one, that method is returned.
func (e *engine) AddMethod(
	owner string, v visibility.T, f finality.T, name string, params []typ.I, result typ.I,
) (*method.T, error) {
	c, err := e.find(owner)
	if err != nil {
		return nil, e.reject("add-method", err)
	}

	if err = usable(result, name); err != nil {
		return nil, e.reject("add-method", err)
	}

	for _, p := range params {
		if err = value(p); err != nil {
			return nil, e.reject("add-method", err)
		}
	}

	m := method.New(owner, v, f, name, params, result)

	overridden, err := c.AddMethod(m)
	if err != nil {
		return nil, e.reject("add-method", err)
	}

	if overridden != nil {
		e.log.Debug("method added", slog.String("signature", m.Signature()),
			slog.String("overrides", overridden.Signature()))
	} else {
		e.log.Debug("method added", slog.String("signature", m.Signature()))
	}

	return overridden, nil
}

// TryExtend makes the class named parent the parent of the class named child.
func (e *engine) TryExtend(child, parent string) error {
	c, err := e.find(child)
	if err != nil {
		return e.reject("extend", err)
	}

	p, err := e.find(parent)
	if err != nil {
		return e.reject("extend", err)
	}

	if err = c.TryExtend(p); err != nil {
		return e.reject("extend", err)
	}

	e.log.Debug("extended", slog.String("child", child), slog.String("parent", parent))

	return nil
}

// TryImplement records that the class named class implements the
// interface named iface.
func (e *engine) TryImplement(class, iface string) error {
	c, err := e.find(class)
	if err != nil {
		return e.reject("implement", err)
	}

	i, err := e.find(iface)
	if err != nil {
		return e.reject("implement", err)
	}

	if err = c.TryImplement(i); err != nil {
		return e.reject("implement", err)
	}

	e.log.Debug("implemented", slog.String("class", class), slog.String("interface", iface))

	return nil
}

// ListConstructs returns the long form of every construct in ascending
// name order.
func (e *engine) ListConstructs() []string {
	return longNames(e.registry.All())
}

// MatchConstructs is ListConstructs restricted to names matching the glob pattern.
func (e *engine) MatchConstructs(pattern string) ([]string, error) {
	cs, err := e.registry.Match(pattern)
	if err != nil {
		return nil, e.reject("list-constructs", err)
	}

	return longNames(cs), nil
}

// ListOwnAttributes returns the signatures of the attributes declared by
// the construct named name.
func (e *engine) ListOwnAttributes(name string) ([]string, error) {
	return e.attributes(name, (*construct.T).OwnAttributes)
}

// ListAllAttributes returns the signatures of the attributes visible from
// the construct named name, with shadowing applied.
func (e *engine) ListAllAttributes(name string) ([]string, error) {
	return e.attributes(name, func(c *construct.T) []*attribute.T {
		return c.AllAttributes()
	})
}

// ListShadowingAttributes returns the signatures of the attributes visible
// from the construct named name, shadowed ones included.
func (e *engine) ListShadowingAttributes(name string) ([]string, error) {
	return e.attributes(name, (*construct.T).ShadowingAttributes)
}

// ListOwnMethods returns the signatures of the methods declared by the
// construct named name.
func (e *engine) ListOwnMethods(name string) ([]string, error) {
	return e.methods(name, (*construct.T).OwnMethods)
}

// ListAllMethods returns the signatures of the methods visible from the
// construct named name.
func (e *engine) ListAllMethods(name string) ([]string, error) {
	return e.methods(name, func(c *construct.T) []*method.T {
		return c.AllMethods()
	})
}

// FindMethodByName returns the signatures of the methods named methodName
// declared by the construct named name.
func (e *engine) FindMethodByName(name, methodName string) ([]string, error) {
	return e.methods(name, func(c *construct.T) []*method.T {
		return c.FindMethodsByName(methodName)
	})
}

// FindMethodOverride returns the signatures of every method reachable from
// the construct named name whose identity is methodName(params):result.
func (e *engine) FindMethodOverride(name, methodName string, params []typ.I, result typ.I) ([]string, error) {
	return e.methods(name, func(c *construct.T) []*method.T {
		return c.FindMethodOverride(method.Probe(methodName, params, result))
	})
}

func (e *engine) attributes(name string, list func(*construct.T) []*attribute.T) ([]string, error) {
	c, err := e.find(name)
	if err != nil {
		return nil, err
	}

	as := list(c)

	signatures := make([]string, len(as))
	for i, a := range as {
		signatures[i] = a.Signature()
	}

	return signatures, nil
}

func (e *engine) methods(name string, list func(*construct.T) []*method.T) ([]string, error) {
	c, err := e.find(name)
	if err != nil {
		return nil, err
	}

	ms := list(c)

	signatures := make([]string, len(ms))
	for i, m := range ms {
		signatures[i] = m.Signature()
	}

	return signatures, nil
}

func (e *engine) find(name string) (*construct.T, error) {
	c := e.registry.Get(name)
	if c == nil {
		return nil, failure.Newf(failure.NotFound, "no construct named %q", name)
	}

	return c, nil
}

func (e *engine) reject(op string, err error) error {
	e.log.Info("rejected", slog.String("op", op),
		slog.String("code", string(failure.CodeOf(err))), slog.String("reason", failure.Message(err)))

	return err
}

func longNames(cs []*construct.T) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.LongName()
	}

	return names
}

func usable(t typ.I, name string) error {
	if t == nil {
		return failure.New(failure.ParseFailure, "missing type")
	}

	return validate.MemberName(name)
}

// value rejects types that cannot hold a value.
func value(t typ.I) error {
	if t == nil {
		return failure.New(failure.ParseFailure, "missing type")
	}

	if t == typ.I(primitive.Void) {
		return failure.New(failure.ParseFailure, "void is only a return type")
	}

	return nil
}
