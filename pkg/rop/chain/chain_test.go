package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

func describe(c *Chain[int]) string {
	return Finally(c,
		func(_ context.Context, v int) string { return "ok " + strconv.Itoa(v) },
		func(_ context.Context, err error) string { return "error " + err.Error() },
		func(_ context.Context, err error) string { return "abort " + err.Error() })
}

func TestStart_Result(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := rop.Ok(10)
	out := Start(ctx, base).Result()
	assert.Equal(t, base.Id(), out.Id())
	assert.True(t, out.ValueEquals(10))

	assert.True(t, FromValue(ctx, 7).Result().ValueEquals(7))
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	called := false
	out := Then(Start(ctx, rop.Error[int](boom)), func(context.Context, int) rop.Result[string] {
		called = true
		return rop.Ok("ok")
	}).Result()

	assert.False(t, called)
	require.True(t, out.IsError())
	assert.ErrorIs(t, out.Err(), boom)
}

func TestThen_PropagateAbort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	abort := errors.New("abort")
	called := false
	out := Then(Start(ctx, rop.Aborted[int](abort)), func(context.Context, int) rop.Result[string] {
		called = true
		return rop.Ok("x")
	}).Result()

	assert.False(t, called)
	require.True(t, out.IsAborted())
	assert.ErrorIs(t, out.Err(), abort)
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := ThenTry(FromValue(ctx, 3), func(_ context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	}).Result()
	assert.True(t, ok.ValueEquals("val_3"))

	failed := ThenTry(FromValue(ctx, 9), func(context.Context, int) (string, error) {
		return "", errors.New("try-error")
	}).Result()
	require.True(t, failed.IsError())
	assert.EqualError(t, failed.Err(), "try-error")
}

func TestMapValidateEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	c := Map(FromValue(ctx, 4), func(_ context.Context, v int) int { return v * 2 }).
		Validate(func(_ context.Context, v int) (bool, string) { return v < 10, "too big" }).
		Ensure(func(_ context.Context, v int) { seen = append(seen, v) }).
		EnsureIf(func(_ context.Context, v int) bool { return v > 100 },
			func(_ context.Context, v int) { seen = append(seen, -v) })

	assert.Equal(t, "ok 8", describe(c))
	assert.Equal(t, []int{8}, seen)

	rejected := FromValue(ctx, 40).
		Validate(func(_ context.Context, v int) (bool, string) { return v < 10, "too big" }).
		Ensure(func(_ context.Context, v int) { seen = append(seen, v) })
	assert.Equal(t, "error too big", describe(rejected))
	assert.Equal(t, []int{8}, seen)
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type user struct {
		Email string `validate:"required,email"`
	}

	assert.True(t, FromValue(ctx, user{Email: "a@b.io"}).ValidateStruct().Result().IsOk())
	assert.True(t, FromValue(ctx, user{Email: "nope"}).ValidateStruct().Result().IsError())
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	recovered := Start(ctx, rop.Error[int](errors.New("missing"))).
		Recover(func(context.Context, error) int { return 1 })
	assert.Equal(t, "ok 1", describe(recovered))

	aborted := Start(ctx, rop.Aborted[int](errors.New("fatal"))).
		Recover(func(context.Context, error) int { return 1 })
	assert.Equal(t, "abort fatal", describe(aborted))
}

func TestFinally_PendingInput(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in := rop.FromPromise[int](promise.Go(func() (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 5, nil
	}))

	c := Map(Start(ctx, in), func(_ context.Context, v int) int { return v + 1 })
	assert.True(t, c.Result().IsAsynchronous())
	assert.Equal(t, "ok 6", describe(c))
}
