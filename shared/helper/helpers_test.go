package helper_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/hashtable/shared/helper"
)

func TestMust(t *testing.T) {
	assert.Equal(t, 42, helper.Must(strconv.Atoi("42")))
	assert.Panics(t, func() { helper.Must(strconv.Atoi("x")) })
}

func TestCatchPanic(t *testing.T) {
	sentinel := errors.New("boom")

	assert.NoError(t, helper.CatchPanic(func() {}))

	err := helper.CatchPanic(func() { panic(sentinel) })
	assert.ErrorIs(t, err, sentinel)

	err = helper.CatchPanic(func() { panic("not an error") })
	assert.EqualError(t, err, "panic: not an error")
}
