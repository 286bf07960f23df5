package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTupleSucceeded(t *testing.T) {
	req := require.New(t)

	tup := Succeeded[error]("success")
	req.True(tup.Ok())

	err, ok := tup.Err()
	req.False(ok)
	req.Nil(err)

	v, ok := tup.Val()
	req.True(ok)
	req.Equal("success", v)

	req.Equal("(<absent>, success)", tup.String())
}

func TestTupleFailed(t *testing.T) {
	req := require.New(t)

	errTest := errors.New("test error")
	tup := Failed[error, int](errTest)
	req.False(tup.Ok())

	err, ok := tup.Err()
	req.True(ok)
	req.Same(errTest, err)

	v, ok := tup.Val()
	req.False(ok)
	req.Equal(0, v)

	e, val := tup.Unpack()
	req.Same(errTest, e)
	req.Equal(0, val)

	req.Equal("(test error, <absent>)", tup.String())
}

func TestTupleFalsyValues(t *testing.T) {
	req := require.New(t)

	zero := Succeeded[error](0)
	v, ok := zero.Val()
	req.True(ok)
	req.Equal(0, v)

	empty := Succeeded[error]("")
	s, ok := empty.Val()
	req.True(ok)
	req.Equal("", s)

	no := Succeeded[error](false)
	b, ok := no.Val()
	req.True(ok)
	req.False(b)

	nothing := Succeeded[error, *int](nil)
	p, ok := nothing.Val()
	req.True(ok)
	req.Nil(p)
}

func TestTupleZeroValueFailure(t *testing.T) {
	req := require.New(t)

	tup := Failed[string, int]("")
	e, ok := tup.Err()
	req.True(ok)
	req.Equal("", e)

	_, ok = tup.Val()
	req.False(ok)
}

func TestTupleZero(t *testing.T) {
	req := require.New(t)

	var tup Tuple[error, int]
	req.True(tup.Ok())

	v, ok := tup.Val()
	req.True(ok)
	req.Equal(0, v)
}
