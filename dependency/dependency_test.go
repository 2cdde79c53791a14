package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomething(t *testing.T) {
	assert.Equal(t, Value, Something())
	assert.Equal(t, Something(), Something())
}
