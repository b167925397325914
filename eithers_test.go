package either_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/either"
	"github.com/stretchr/testify/suite"
)

type EithersTestSuite struct {
	suite.Suite
}

func (suite *EithersTestSuite) TestMerge() {
	suite.Equal("v", either.Merge(either.Left[string, string]("v")))
	suite.Equal("v", either.Merge(either.Right[string]("v")))
}

func (suite *EithersTestSuite) TestFlatteners() {
	suite.Run("LeftFlatten", func() {
		f := either.LeftFlatten[string, int]()
		suite.Equal(either.Left[string, int]("a"), f(either.Left[string, string]("a")))
		suite.Equal(either.Left[string, int]("b"), f(either.Right[string]("b")))
	})

	suite.Run("RightFlatten", func() {
		f := either.RightFlatten[string, int]()
		suite.Equal(either.Right[int]("a"), f(either.Left[string, string]("a")))
		suite.Equal(either.Right[int]("b"), f(either.Right[string]("b")))
	})
}

func (suite *EithersTestSuite) TestFlatten() {
	type nested = either.Either[either.Either[string, string], either.Either[int, int]]

	suite.Run("Flatten", func() {
		suite.Equal(either.Left[string, int]("x"),
			either.Flatten(nested(either.Left[either.Either[string, string], either.Either[int, int]](
				either.Left[string, string]("x")))))
		suite.Equal(either.Left[string, int]("x"),
			either.Flatten(nested(either.Left[either.Either[string, string], either.Either[int, int]](
				either.Right[string]("x")))))
		suite.Equal(either.Right[string](7),
			either.Flatten(nested(either.Right[either.Either[string, string]](
				either.Right[int](7)))))
		suite.Equal(either.Right[string](7),
			either.Flatten(nested(either.Right[either.Either[string, string]](
				either.Left[int, int](7)))))
	})

	suite.Run("FlattenLeft", func() {
		suite.Equal(either.Left[string, int]("y"),
			either.FlattenLeft(either.Left[either.Either[string, string], int](
				either.Right[string]("y"))))
		suite.Equal(either.Right[string](3),
			either.FlattenLeft(either.Right[either.Either[string, string]](3)))
	})

	suite.Run("FlattenRight", func() {
		suite.Equal(either.Right[int]("y"),
			either.FlattenRight(either.Right[int](either.Right[string]("y"))))
		suite.Equal(either.Right[int]("y"),
			either.FlattenRight(either.Right[int](either.Left[string, string]("y"))))
		suite.Equal(either.Left[int, string](3),
			either.FlattenRight(either.Left[int, either.Either[string, string]](3)))
	})
}

func (suite *EithersTestSuite) TestSlices() {
	es := []either.Either[string, int]{
		either.Right[string](1),
		either.Left[string, int]("a"),
		either.Right[string](2),
		either.Left[string, int]("b"),
	}

	suite.Run("Lefts", func() {
		suite.Equal([]string{"a", "b"}, either.Lefts(es))
		suite.Nil(either.Lefts(es[:1]))
	})

	suite.Run("Rights", func() {
		suite.Equal([]int{1, 2}, either.Rights(es))
		suite.Nil(either.Rights(es[1:2]))
	})

	suite.Run("Partition", func() {
		lefts, rights := either.Partition(es)
		suite.Equal([]string{"a", "b"}, lefts)
		suite.Equal([]int{1, 2}, rights)
	})

	suite.Run("Sequence", func() {
		suite.Equal(either.Left[string, []int]("a"), either.Sequence(es))
		suite.Equal(either.Right[string]([]int{1, 2}),
			either.Sequence([]either.Either[string, int]{es[0], es[2]}))
		suite.Equal(either.Right[string]([]int{}),
			either.Sequence[string, int](nil))
	})
}

func (suite *EithersTestSuite) TestResults() {
	boom := errors.New("boom")

	suite.Run("FromResult", func() {
		suite.Equal(either.Right[error](3), either.FromResult(3, nil))
		e := either.FromResult(0, boom)
		suite.True(e.IsLeft())
		suite.Same(boom, e.MustLeft())
	})

	suite.Run("Try", func() {
		e := either.Try(func() (string, error) { return "ok", nil })
		suite.Equal(either.Right[error]("ok"), e)
		suite.PanicsWithError("f cannot be nil", func() {
			either.Try[string](nil)
		})
	})

	suite.Run("ToResult", func() {
		r, err := either.ToResult(either.Right[error](2))
		suite.NoError(err)
		suite.Equal(2, r)
		_, err = either.ToResult(either.Left[error, int](boom))
		suite.Same(boom, err)
	})

	suite.Run("Collect", func() {
		rights, err := either.Collect([]either.Either[error, int]{
			either.Right[error](1), either.Right[error](2),
		})
		suite.NoError(err)
		suite.Equal([]int{1, 2}, rights)

		other := errors.New("other")
		rights, err = either.Collect([]either.Either[error, int]{
			either.Left[error, int](boom),
			either.Right[error](1),
			either.Left[error, int](other),
		})
		suite.Nil(rights)
		var merr *multierror.Error
		suite.Require().ErrorAs(err, &merr)
		suite.Equal([]error{boom, other}, merr.Errors)
		suite.ErrorIs(err, boom)
		suite.True(strings.Contains(err.Error(), "2 errors occurred"))
	})
}

func TestEithersTestSuite(t *testing.T) {
	suite.Run(t, new(EithersTestSuite))
}
