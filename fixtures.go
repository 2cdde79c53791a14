package basicproject

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var errNilFixture = errors.New("fixture must not be nil")

type FixturesOpt func(*Fixtures)

func NewFixtures(opts ...FixturesOpt) *Fixtures {
	f := &Fixtures{}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = logger()
	}
	return f
}

func FixturesLogger(logger *zap.Logger) FixturesOpt {
	return func(f *Fixtures) {
		f.log = logger
	}
}

// Fixtures owns a set of fixtures and releases them in reverse order of addition.
type Fixtures struct {
	log   *zap.Logger
	store map[string]Fixture
	order []string
}

func (f *Fixtures) Add(ctx context.Context, fixtures ...Fixture) error {
	for _, fix := range fixtures {
		if fix == nil {
			return errNilFixture
		}
		if err := f.AddByName(ctx, fixtureName(fix), fix); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) AddByName(ctx context.Context, name string, fixture Fixture) error {
	if fixture == nil {
		return errNilFixture
	}
	if f.store == nil {
		f.order = []string{}
		f.store = map[string]Fixture{}
	}
	if _, ok := f.store[name]; ok {
		return fmt.Errorf("fixture '%v' already exists", name)
	}
	if err := fixture.SetUp(ctx); err != nil {
		return fmt.Errorf("failed to setup fixture '%v': %w", name, err)
	}
	f.order = append(f.order, name)
	f.store[name] = fixture
	f.log.Debug("added", zap.String("type", typeName(fixture)), zap.String("name", name))
	return nil
}

func (f *Fixtures) Get(name string) Fixture {
	return f.store[name]
}

// Names returns fixture names in the order they were added.
func (f *Fixtures) Names() []string {
	return append([]string{}, f.order...)
}

func (f *Fixtures) Len() int {
	return len(f.order)
}

func (f *Fixtures) TearDown(ctx context.Context) error {
	var firstErr error
	for i := len(f.order) - 1; i >= 0; i-- {
		name := f.order[i]
		fixture := f.Get(name)
		if err := fixture.TearDown(ctx); err != nil {
			f.log.Warn("failed to teardown fixture", zap.String("fixture", name), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to teardown fixture '%v': %w", name, err)
			}
		}
		f.log.Debug("removed", zap.String("type", typeName(fixture)), zap.String("name", name))
	}
	f.order = nil
	f.store = nil
	return firstErr
}

// RecoverTearDown is deferred by callers; on panic it tears down and re-panics.
func (f *Fixtures) RecoverTearDown(ctx context.Context) {
	if r := recover(); r != nil {
		if err := f.TearDown(ctx); err != nil {
			f.log.Warn("failed to tear down", zap.Error(err))
		}
		panic(r)
	}
}

// Find returns the first fixture of type T in insertion order.
func Find[T Fixture](f *Fixtures) (T, bool) {
	for _, name := range f.order {
		if val, ok := f.store[name].(T); ok {
			return val, true
		}
	}
	var zero T
	return zero, false
}
