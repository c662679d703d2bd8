package logfields

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Equal(t, KeyError, Error(nil).Key)
}

func TestDuration(t *testing.T) {
	attr := Duration(1500 * time.Microsecond)
	assert.Equal(t, KeyDurationMS, attr.Key)
	assert.InDelta(t, 1.5, attr.Value.Float64(), 0.0001)
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, KeyInput, Input("a.md").Key)
	assert.Equal(t, "a.md", Input("a.md").Value.String())
	assert.Equal(t, KeyRepository, Repository("o/r").Key)
	assert.Equal(t, int64(3), Count(3).Value.Int64())
}
