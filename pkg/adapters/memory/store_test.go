package memory

import (
	"testing"

	"github.com/JangRuBin2/rulang/pkg/ports/tests"
)

func TestStoreContract(t *testing.T) {
	tests.StoreContractTest(t, NewStore())
}
