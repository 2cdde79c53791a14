// Package other provides DerivedFixture, a fixture built on top of
// basicproject.BaseFixture from outside its package.
package other

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/charlieparkes/basicproject"
	"go.uber.org/zap"
)

var _ basicproject.Fixture = (*DerivedFixture)(nil)

func NewDerivedFixture(opts ...basicproject.BaseFixtureOpt) *DerivedFixture {
	return &DerivedFixture{
		BaseFixture: basicproject.NewBaseFixture(opts...),
	}
}

type DerivedFixture struct {
	*basicproject.BaseFixture
	tornDown bool
}

func (f *DerivedFixture) Type() string {
	return fmt.Sprint(reflect.TypeOf(f).Elem())
}

// Describe writes the base description one level deeper, then its own line.
func (f *DerivedFixture) Describe(w io.Writer, indent basicproject.Indent) {
	f.BaseFixture.Describe(w, indent.Next())
	fmt.Fprintf(w, "%vDerivedFixture: inherits BaseFixture\n", indent)
}

func (f *DerivedFixture) String() string {
	return basicproject.Sprint(f)
}

func (f *DerivedFixture) SetUp(ctx context.Context) error {
	if err := f.BaseFixture.SetUp(ctx); err != nil {
		return err
	}
	f.tornDown = false
	f.Logger().Debug("setup", zap.String("type", f.Type()))
	return nil
}

func (f *DerivedFixture) TearDown(ctx context.Context) error {
	if !f.tornDown {
		f.tornDown = true
		f.Logger().Debug("teardown", zap.String("type", f.Type()))
	}
	return f.BaseFixture.TearDown(ctx)
}
