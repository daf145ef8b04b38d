package tiny

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

func increment(_ context.Context, v int) rop.Result[int] {
	return rop.Ok(v + 1)
}

func TestStartAndFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.True(t, Start(ctx, rop.Ok(5)).Result().ValueEquals(5))
	assert.True(t, FromValue(ctx, 7).Result().ValueEquals(7))
}

func TestThen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.True(t, FromValue(ctx, 3).Then(increment).Then(increment).Result().ValueEquals(5))

	boom := errors.New("boom")
	called := false
	out := Start(ctx, rop.Error[int](boom)).Then(func(_ context.Context, v int) rop.Result[int] {
		called = true
		return rop.Ok(v)
	}).Result()

	assert.False(t, called)
	assert.ErrorIs(t, out.Err(), boom)
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue(ctx, 1).ThenTry(func(_ context.Context, v int) (int, error) { return v * 3, nil })
	assert.True(t, ok.Result().ValueEquals(3))

	failed := FromValue(ctx, 1).ThenTry(func(context.Context, int) (int, error) { return 0, errors.New("repo") })
	assert.True(t, failed.Result().IsError())

	timedOut := FromValue(ctx, 1).ThenTry(func(context.Context, int) (int, error) { return 0, context.DeadlineExceeded })
	require.True(t, timedOut.Result().IsAborted())
	assert.ErrorIs(t, timedOut.Result().Err(), context.DeadlineExceeded)
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.True(t, FromValue(ctx, 2).Map(func(_ context.Context, v int) int { return v * v }).Result().ValueEquals(4))
	assert.True(t, Start(ctx, rop.Aborted[int](errors.New("a"))).Map(func(_ context.Context, v int) int { return v }).Result().IsAborted())
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	out := FromValue(ctx, 0).RepeatUntil(func(ctx context.Context, v int) rop.Result[int] {
		calls++
		return increment(ctx, v)
	}, func(_ context.Context, v int) bool { return v < 3 })

	assert.True(t, out.Result().ValueEquals(3))
	assert.Equal(t, 3, calls)

	once := FromValue(ctx, 10).RepeatUntil(increment, func(context.Context, int) bool { return false })
	assert.True(t, once.Result().ValueEquals(11))

	chained := FromValue(ctx, 0).RepeatChainUntil(func(ctx context.Context, v int) Chain[int] {
		return FromValue(ctx, v+2)
	}, func(_ context.Context, v int) bool { return v < 5 })
	assert.True(t, chained.Result().ValueEquals(6))
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 0).While(increment, func(_ context.Context, v int) bool { return v < 4 })
	assert.True(t, out.Result().ValueEquals(4))

	never := FromValue(ctx, 9).While(increment, func(_ context.Context, v int) bool { return v < 4 })
	assert.True(t, never.Result().ValueEquals(9))

	stop := errors.New("stop")
	failing := FromValue(ctx, 0).WhileChain(func(ctx context.Context, v int) Chain[int] {
		if v == 2 {
			return Start(ctx, rop.Error[int](stop))
		}
		return FromValue(ctx, v+1)
	}, func(context.Context, int) bool { return true })
	assert.ErrorIs(t, failing.Result().Err(), stop)
}

func TestWhile_PendingStep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := FromValue(ctx, 0).While(func(_ context.Context, v int) rop.Result[int] {
		return rop.FromPromise[int](promise.Go(func() (int, error) { return v + 1, nil }))
	}, func(_ context.Context, v int) bool { return v < 3 })

	assert.False(t, out.Result().IsAsynchronous())
	assert.True(t, out.Result().ValueEquals(3))
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := errors.New("e")
	a := errors.New("a")

	assert.True(t, Start(ctx, rop.Error[int](e)).Or(FromValue(ctx, 2)).Result().ValueEquals(2))
	assert.True(t, FromValue(ctx, 1).Or(FromValue(ctx, 2)).Result().ValueEquals(1))

	out := Start(ctx, rop.Error[int](e)).Or(Start(ctx, rop.Aborted[int](a))).Result()
	require.True(t, out.IsAborted())
	assert.ErrorIs(t, out.Err(), a)

	both := Start(ctx, rop.Error[int](e)).Or(Start(ctx, rop.Error[int](errors.New("other")))).Result()
	assert.ErrorIs(t, both.Err(), e)
}

func TestAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := errors.New("e")

	assert.True(t, FromValue(ctx, 1).And(FromValue(ctx, 2)).Result().ValueEquals(2))
	assert.ErrorIs(t, FromValue(ctx, 1).And(Start(ctx, rop.Error[int](e))).Result().Err(), e)
	assert.ErrorIs(t, Start(ctx, rop.Error[int](e)).And(FromValue(ctx, 2)).Result().Err(), e)
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls []string
	onOk := func(context.Context, int) { calls = append(calls, "ok") }
	onErr := func(context.Context, error) { calls = append(calls, "error") }
	onAbort := func(context.Context, error) { calls = append(calls, "abort") }

	FromValue(ctx, 1).Ensure(onOk, onErr, onAbort)
	Start(ctx, rop.Error[int](errors.New("e"))).Ensure(onOk, onErr, onAbort)
	Start(ctx, rop.Aborted[int](errors.New("a"))).Ensure(onOk, onErr, onAbort)
	FromValue(ctx, 1).Ensure(nil, nil, nil)

	assert.Equal(t, []string{"ok", "error", "abort"}, calls)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	final := func(c Chain[int]) int {
		return c.Finally(
			func(_ context.Context, v int) int { return v },
			func(context.Context, error) int { return -1 },
			func(context.Context, error) int { return -2 })
	}

	assert.Equal(t, 5, final(FromValue(ctx, 5)))
	assert.Equal(t, -1, final(Start(ctx, rop.Error[int](errors.New("e")))))
	assert.Equal(t, -2, final(Start(ctx, rop.Aborted[int](errors.New("a")))))
}
