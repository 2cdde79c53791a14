package basicproject

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyFixture struct {
	*BaseFixture
	DummyMember  int
	setUpErr     error
	tearDownErr  error
	tearDownHook func()
}

func newDummyFixture() *dummyFixture {
	return &dummyFixture{BaseFixture: NewBaseFixture(fixedDependency("dummy"))}
}

func (df *dummyFixture) SetUp(ctx context.Context) error {
	if df.setUpErr != nil {
		return df.setUpErr
	}
	df.DummyMember = 123
	return df.BaseFixture.SetUp(ctx)
}

func (df *dummyFixture) TearDown(ctx context.Context) error {
	df.DummyMember = 0
	if df.tearDownHook != nil {
		df.tearDownHook()
	}
	if df.tearDownErr != nil {
		return df.tearDownErr
	}
	return df.BaseFixture.TearDown(ctx)
}

func TestFixtures(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))
	df := newDummyFixture()
	df2 := newDummyFixture()

	require.NoError(t, fixtures.Add(ctx, df))
	require.NoError(t, fixtures.AddByName(ctx, "foobar", df2))
	assert.Equal(t, 2, fixtures.Len())
	assert.True(t, strings.HasPrefix(fixtures.Names()[0], "dummy_fixture_"))
	assert.Equal(t, "foobar", fixtures.Names()[1])

	f := fixtures.Get("foobar").(*dummyFixture)
	assert.Equal(t, 123, f.DummyMember)

	require.NoError(t, fixtures.TearDown(ctx))
	assert.Equal(t, 0, f.DummyMember)
	assert.Equal(t, 0, df.DummyMember)
	assert.Equal(t, 0, fixtures.Len())
	assert.Nil(t, fixtures.Get("foobar"))
}

func TestFixturesDuplicateName(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))
	require.NoError(t, fixtures.AddByName(ctx, "a", newDummyFixture()))
	assert.Error(t, fixtures.AddByName(ctx, "a", newDummyFixture()))
	assert.Equal(t, 1, fixtures.Len())
}

func TestFixturesSetUpError(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))
	boom := errors.New("boom")
	df := newDummyFixture()
	df.setUpErr = boom

	err := fixtures.AddByName(ctx, "broken", df)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, fixtures.Len())
}

func TestFixturesTearDownReverseOrder(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))
	order := []string{}
	for _, name := range []string{"first", "second", "third"} {
		name := name
		df := newDummyFixture()
		df.tearDownHook = func() { order = append(order, name) }
		require.NoError(t, fixtures.AddByName(ctx, name, df))
	}
	require.NoError(t, fixtures.TearDown(ctx))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestFixturesTearDownFirstError(t *testing.T) {
	ctx := context.Background()
	log, logs := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))
	boom := errors.New("boom")
	broken := newDummyFixture()
	broken.tearDownErr = boom
	healthy := newDummyFixture()

	require.NoError(t, fixtures.AddByName(ctx, "healthy", healthy))
	require.NoError(t, fixtures.AddByName(ctx, "broken", broken))

	err := fixtures.TearDown(ctx)
	assert.ErrorIs(t, err, boom)
	assert.True(t, healthy.TornDown())
	assert.Len(t, logs.FilterMessage("failed to teardown fixture").All(), 1)
}

func TestFixturesRecoverTearDown(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))
	df := newDummyFixture()
	require.NoError(t, fixtures.Add(ctx, df))

	assert.PanicsWithValue(t, "oops", func() {
		defer fixtures.RecoverTearDown(ctx)
		panic("oops")
	})
	assert.True(t, df.TornDown())
	assert.Equal(t, 0, fixtures.Len())
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))

	_, ok := Find[*dummyFixture](fixtures)
	assert.False(t, ok)

	base := NewBaseFixture(BaseFixtureLogger(log))
	df := newDummyFixture()
	require.NoError(t, fixtures.Add(ctx, base, df))

	found, ok := Find[*dummyFixture](fixtures)
	require.True(t, ok)
	assert.Same(t, df, found)

	foundBase, ok := Find[*BaseFixture](fixtures)
	require.True(t, ok)
	assert.Same(t, base, foundBase)
}

func TestFixturesRejectNil(t *testing.T) {
	ctx := context.Background()
	log, _ := observedLogger()
	fixtures := NewFixtures(FixturesLogger(log))

	assert.Error(t, fixtures.Add(ctx, nil))
	assert.Error(t, fixtures.AddByName(ctx, "nothing", nil))
	assert.Equal(t, 0, fixtures.Len())

	df := newDummyFixture()
	assert.Error(t, fixtures.Add(ctx, df, nil))
	assert.Equal(t, 1, fixtures.Len())
	assert.Equal(t, 123, df.DummyMember)
}
