package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/schema"
	"github.com/JangRuBin2/rulang/pkg/value"
)

func fields() []schema.Field {
	return []schema.Field{
		{Name: "name", Type: schema.String()},
		{Name: "age", Type: schema.Number(), Optional: true},
	}
}

func TestValidateObject_RequiredAndOptionalPass(t *testing.T) {
	obj := value.NewObject()
	obj.Set("name", value.NewString("A"))
	obj.Set("age", value.NewNumber(1))
	require.NoError(t, schema.ValidateObject(fields(), obj, ""))

	obj2 := value.NewObject()
	obj2.Set("name", value.NewString("A"))
	require.NoError(t, schema.ValidateObject(fields(), obj2, ""), "optional field may be absent")
}

func TestValidateObject_WrongTypeFails(t *testing.T) {
	obj := value.NewObject()
	obj.Set("name", value.NewNumber(1))
	err := schema.ValidateObject(fields(), obj, "")
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Path)
	require.Equal(t, "string", verr.Expected)
	require.Equal(t, "number", verr.Actual)
}

func TestValidateObject_MissingRequiredFieldFails(t *testing.T) {
	obj := value.NewObject()
	obj.Set("age", value.NewNumber(1))
	err := schema.ValidateObject(fields(), obj, "")
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Path)
	require.Equal(t, "", verr.Actual)
}

func TestValidateObject_NestedObjectValidation(t *testing.T) {
	nested := []schema.Field{
		{Name: "street", Type: schema.String()},
	}
	top := []schema.Field{
		{Name: "address", Type: schema.Object(), Nested: nested},
	}

	addr := value.NewObject()
	addr.Set("street", value.NewNumber(1))
	root := value.NewObject()
	root.Set("address", value.NewObjectValue(addr))

	err := schema.ValidateObject(top, root, "")
	require.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "address.street", verr.Path)
}
