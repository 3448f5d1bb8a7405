package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/pkg/value"
)

func TestStringify_Number_IntegerHasNoTrailingDot(t *testing.T) {
	require.Equal(t, "3", value.Stringify(value.NewNumber(3)))
	require.Equal(t, "3.5", value.Stringify(value.NewNumber(3.5)))
}

func TestStringify_Array(t *testing.T) {
	arr := value.NewArray([]value.Value{
		value.NewNumber(1), value.NewString("a"), value.NewBoolean(true),
	})
	require.Equal(t, "[1, a, true]", value.Stringify(arr))
}

func TestStringify_Object_PreservesInsertionOrder(t *testing.T) {
	obj := value.NewObject()
	obj.Set("a", value.NewNumber(1))
	obj.Set("b", value.NewNumber(2))
	require.Equal(t, "{a: 1, b: 2}", value.Stringify(value.NewObjectValue(obj)))
}

func TestStringify_Null(t *testing.T) {
	require.Equal(t, "null", value.Stringify(value.NewNull()))
}

func TestValue_Truthy(t *testing.T) {
	require.False(t, value.NewNull().Truthy())
	require.False(t, value.NewBoolean(false).Truthy())
	require.False(t, value.NewNumber(0).Truthy())
	require.False(t, value.NewString("").Truthy())

	require.True(t, value.NewBoolean(true).Truthy())
	require.True(t, value.NewNumber(1).Truthy())
	require.True(t, value.NewString("x").Truthy())
	require.True(t, value.NewArray(nil).Truthy())
}

func TestValue_Equal(t *testing.T) {
	require.True(t, value.NewNumber(1).Equal(value.NewNumber(1)))
	require.False(t, value.NewNumber(1).Equal(value.NewNumber(2)))
	require.True(t, value.NewNull().Equal(value.NewNull()))
	require.False(t, value.NewNull().Equal(value.NewBoolean(false)))
	require.True(t, value.NewString("a").Equal(value.NewString("a")))

	arr1 := value.NewArray(nil)
	arr2 := value.NewArray(nil)
	require.False(t, arr1.Equal(arr2), "non-scalar tags never compare equal")
}

func TestScope_ShadowingAndAssignment(t *testing.T) {
	root := value.NewScope(nil)
	root.Define("x", value.NewNumber(1))

	child := value.NewScope(root)
	child.Define("x", value.NewNumber(2))

	v, ok := child.Get("x")
	require.True(t, ok)
	require.Equal(t, 2.0, v.Num())

	v, ok = root.Get("x")
	require.True(t, ok)
	require.Equal(t, 1.0, v.Num())

	ok = child.Assign("x", value.NewNumber(3))
	require.True(t, ok)
	v, _ = child.Get("x")
	require.Equal(t, 3.0, v.Num())
	v, _ = root.Get("x")
	require.Equal(t, 1.0, v.Num(), "assign in child only rebinds the child's own x")
}

func TestScope_AssignToOuterVariableFromInnerBlockUpdatesOuter(t *testing.T) {
	root := value.NewScope(nil)
	root.Define("y", value.NewNumber(1))

	child := value.NewScope(root)
	ok := child.Assign("y", value.NewNumber(9))
	require.True(t, ok, "y is not shadowed in child, so assign should find it in root")

	v, _ := root.Get("y")
	require.Equal(t, 9.0, v.Num())
}

func TestScope_UndefinedAssignFails(t *testing.T) {
	root := value.NewScope(nil)
	require.False(t, root.Assign("nope", value.NewNull()))
}
