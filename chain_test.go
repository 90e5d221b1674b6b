package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIfOkInvokesOnce(t *testing.T) {
	var got []int
	r := OkOf[string](7)
	out := r.
		IfOk(func(n int) { got = append(got, n) }).
		IfErr(func(string) { t.Fatal("IfErr callback invoked on a success result") })
	require.Equal(t, []int{7}, got)
	require.Equal(t, r, out)
}

func TestIfErrInvokesOnce(t *testing.T) {
	var got []string
	r := ErrOf[int]("boom")
	out := r.
		IfOk(func(int) { t.Fatal("IfOk callback invoked on a failure result") }).
		IfErr(func(msg string) { got = append(got, msg) })
	require.Equal(t, []string{"boom"}, got)
	require.Equal(t, r, out)
}

func TestIfOkZeroArgCallback(t *testing.T) {
	calls := 0
	OkOf[string](7).IfOk(func() { calls++ })
	require.Equal(t, 1, calls)

	ErrOf[int]("boom").IfOk(func() { calls++ })
	require.Equal(t, 1, calls)
}

func TestIfErrZeroArgCallback(t *testing.T) {
	calls := 0
	ErrOf[int]("boom").IfErr(func() { calls++ })
	require.Equal(t, 1, calls)

	OkOf[string](7).IfErr(func() { calls++ })
	require.Equal(t, 1, calls)
}

func TestChainEvaluatesBothSides(t *testing.T) {
	okCalls, errCalls := 0, 0
	ErrOf[int]("boom").
		IfOk(func(int) { okCalls++ }).
		IfErr(func(string) { errCalls++ }).
		IfOk(func() { okCalls++ }).
		IfErr(func() { errCalls++ })
	require.Equal(t, 0, okCalls)
	require.Equal(t, 2, errCalls)
}

func TestBadCallbackSignature(t *testing.T) {
	require.PanicsWithError(t, "result: IfOk callback must be func(payload) or func(), got int", func() {
		OkOf[string](7).IfOk(42)
	})
	// rejected even when the variant is inactive
	require.PanicsWithError(t, "result: IfOk callback must be func(payload) or func(), got int", func() {
		ErrOf[int]("boom").IfOk(42)
	})
	require.PanicsWithError(t, "result: IfErr callback must be func(payload) or func(), got string", func() {
		OkOf[string](7).IfErr("not a func")
	})
}

func TestCallbackPanicPropagates(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		OkOf[string](7).IfOk(func(int) { panic("boom") })
	})
	require.PanicsWithValue(t, "boom", func() {
		ErrOf[int]("x").IfErr(func() { panic("boom") })
	})
}
