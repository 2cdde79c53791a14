package basicproject

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/charlieparkes/basicproject/dependency"
	"go.uber.org/zap"
)

// Describer writes a human readable description of itself.
type Describer interface {
	Describe(w io.Writer, indent Indent)
}

type Fixture interface {
	Describer
	Type() string
	SetUp(ctx context.Context) error
	TearDown(ctx context.Context) error
}

// Dependency is the external collaborator whose value BaseFixture reports.
type Dependency interface {
	Something() any
}

type DependencyFunc func() any

func (fn DependencyFunc) Something() any {
	return fn()
}

func defaultDependency() Dependency {
	return DependencyFunc(func() any { return dependency.Something() })
}

// Sprint renders d at the outermost indent.
func Sprint(d Describer) string {
	var buf bytes.Buffer
	d.Describe(&buf, 0)
	return buf.String()
}

type BaseFixtureOpt func(*BaseFixture)

func NewBaseFixture(opts ...BaseFixtureOpt) *BaseFixture {
	f := &BaseFixture{}
	for _, opt := range opts {
		opt(f)
	}
	if f.dependency == nil {
		f.dependency = defaultDependency()
	}
	if f.log == nil {
		f.log = logger()
	}
	return f
}

func BaseFixtureDependency(d Dependency) BaseFixtureOpt {
	return func(f *BaseFixture) {
		f.dependency = d
	}
}

func BaseFixtureLogger(logger *zap.Logger) BaseFixtureOpt {
	return func(f *BaseFixture) {
		f.log = logger
	}
}

type BaseFixture struct {
	log        *zap.Logger
	dependency Dependency
	tornDown   bool
}

func (f *BaseFixture) Type() string {
	return fmt.Sprint(reflect.TypeOf(f).Elem())
}

func (f *BaseFixture) Logger() *zap.Logger {
	return f.log
}

func (f *BaseFixture) Describe(w io.Writer, indent Indent) {
	fmt.Fprintf(w, "%vBaseFixture:\n", indent)
	fmt.Fprintf(w, "%v  Dependency: %v\n", indent, f.dependency.Something())
}

func (f *BaseFixture) String() string {
	return Sprint(f)
}

func (f *BaseFixture) SetUp(context.Context) error {
	f.tornDown = false
	f.log.Debug("setup", zap.String("type", f.Type()))
	return nil
}

// TearDown releases the fixture. Calling it again is a no-op.
func (f *BaseFixture) TearDown(context.Context) error {
	if f.tornDown {
		return nil
	}
	f.tornDown = true
	f.log.Debug("teardown", zap.String("type", f.Type()))
	return nil
}

func (f *BaseFixture) TornDown() bool {
	return f.tornDown
}
