package wishlist

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Toggle(t *testing.T) {
	s := NewSet("1", "3")

	s2 := s.Toggle("3")
	assert.False(t, s2.Contains("3"))
	assert.True(t, s.Contains("3"), "receiver must be unchanged")

	s3 := s2.Toggle("5")
	assert.Equal(t, []string{"1", "5"}, s3.IDs())
}

func TestSet_AddIgnoresDuplicatesAndEmpty(t *testing.T) {
	s := NewSet("1", "1", "", "2")
	assert.Equal(t, []string{"1", "2"}, s.IDs())
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(Set{})
	require.NoError(t, err)
	assert.Equal(t, "[]", data)
}

func TestDecode_Corrupt(t *testing.T) {
	for _, data := range []string{"", "{", `{"ids":["1"]}`, `[1,2]`, "null-ish"} {
		_, err := Decode(data)
		assert.Error(t, err, "data %q", data)
	}
}

func TestSetProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genIDs := gen.SliceOf(gen.IntRange(1, 20).Map(func(n int) string { return fmt.Sprint(n) }))

	properties.Property("encode then decode reproduces the set", prop.ForAll(
		func(ids []string) bool {
			s := NewSet(ids...)
			data, err := Encode(s)
			if err != nil {
				return false
			}
			got, err := Decode(data)
			return err == nil && got.Equal(s)
		},
		genIDs,
	))

	properties.Property("toggle twice is identity", prop.ForAll(
		func(ids []string, id int) bool {
			s := NewSet(ids...)
			key := fmt.Sprint(id)
			return s.Toggle(key).Toggle(key).Equal(s)
		},
		genIDs,
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
