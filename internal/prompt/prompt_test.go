package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpecs() []params.Spec {
	return []params.Spec{
		{Name: "Height", Min: 1, Max: 500, Unit: "m"},
		{Name: "Wind Velocity", Min: 0, Max: 400, Unit: "km/h"},
	}
}

func TestCollect(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("12\n36\n"), &out)
	store := params.NewStore(testSpecs(), nil)

	require.NoError(t, s.Collect(store))
	assert.Equal(t, 12.0, store.Params().Height)
	assert.InDelta(t, 10.0, store.Params().WindVelocity, 1e-9)

	assert.Contains(t, out.String(), "Enter the value for Height (1 - 500 m): ")
	assert.Contains(t, out.String(), "Height set to: 12 m")
	assert.Contains(t, out.String(), "Wind Velocity set to: 36 km/h")
}

func TestCollect_RepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("0\ntall\n\n500\n400.5\n400\n"), &out)
	store := params.NewStore(testSpecs(), nil)

	require.NoError(t, s.Collect(store))
	assert.Equal(t, 500.0, store.Params().Height)
	assert.InDelta(t, 400/params.KmhPerMs, store.Params().WindVelocity, 1e-9)

	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input. Enter a value between 1 and 500 m."))
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid input. Enter a value between 0 and 400 km/h."))
}

func TestCollect_UnexpectedEOF(t *testing.T) {
	s := NewSession(strings.NewReader("12\n"), io.Discard)
	store := params.NewStore(testSpecs(), nil)

	err := s.Collect(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "Wind Velocity")
	assert.Equal(t, 12.0, store.Params().Height)
}

func TestCollectSpecs_OnlyAsksForGivenSpecs(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("36\n"), &out)
	store := params.NewStore(testSpecs(), nil)
	store.Assign("Height", 12)

	require.NoError(t, s.CollectSpecs(store, testSpecs()[1:]))
	assert.NotContains(t, out.String(), "Enter the value for Height")
	assert.Equal(t, 12.0, store.Params().Height)
	assert.InDelta(t, 10.0, store.Params().WindVelocity, 1e-9)
}

func TestConfirm(t *testing.T) {
	s := NewSession(strings.NewReader("Yes\nno\n"), io.Discard)

	ok, err := s.Confirm("Save")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Confirm("Save")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Confirm("Save")
	assert.ErrorIs(t, err, io.EOF)
}

func TestChoose(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("x\n9\nbr\n2\n"), &out)
	options := []string{"W", "C", "BR"}

	i, err := s.Choose("Material: ", options)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice. Enter one of: W, C, BR."))

	i, err = s.Choose("Material: ", options)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = s.Choose("Material: ", options)
	assert.ErrorIs(t, err, io.EOF)
}
