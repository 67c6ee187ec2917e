package validation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonNameDisallowedCharacters(t *testing.T) {
	disallowed := []string{
		"'", `"`, "?", "!", "@", "#", "$", "%", "^", "&", "*", "(", ")",
		"+", "=", "[", "]", "{", "}", "|", "<", ">", ",", ".", "/", `\`, ":", ";",
	}

	for _, ch := range disallowed {
		name := fmt.Sprintf("Samir%s Mammadov oğlu", ch)
		t.Run(fmt.Sprintf("char %q", ch), func(t *testing.T) {
			v := PersonName("Name", name)(context.Background())
			require.NotNil(t, v, "name with %q must be rejected", ch)
			assert.Equal(t, "Name", v.Field)
			assert.Contains(t, v.Message, "invalid characters")
		})
	}
}

func TestPersonNameSuffixes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "latin oglu", value: "Samir Mammadov oğlu", valid: true},
		{name: "latin qizi", value: "Aysel Mammadova qızı", valid: true},
		{name: "latin ovic", value: "Ivan Petrov oviç", valid: true},
		{name: "latin ovna", value: "Irina Petrova ovna", valid: true},
		{name: "cyrillic ogly", value: "Самир Маммадов оглы", valid: true},
		{name: "cyrillic gyzy", value: "Айсель Маммадова гызы", valid: true},
		{name: "cyrillic ovich", value: "Иван Петров ович", valid: true},
		{name: "cyrillic ovna", value: "Ирина Петрова овна", valid: true},
		{name: "uppercase cyrillic suffix", value: "Самир Маммадов ОГЛЫ", valid: true},
		{name: "no suffix", value: "John Smith", valid: false},
		{name: "suffix in the middle", value: "oğlu Samir Mammadov", valid: false},
		{name: "empty is left to Required", value: "", valid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := PersonName("Name", tc.value)(context.Background())
			if tc.valid {
				assert.Nil(t, v)
			} else {
				require.NotNil(t, v)
				assert.Contains(t, v.Message, "must end with one of the following")
			}
		})
	}
}

func TestLengthRules(t *testing.T) {
	assert.Nil(t, Required("CreatedBy", "user")(context.Background()))
	assert.NotNil(t, Required("CreatedBy", "")(context.Background()))

	assert.Nil(t, MaxLen("Manager", "A01", 3)(context.Background()))
	assert.NotNil(t, MaxLen("Manager", "A012", 3)(context.Background()))

	assert.Nil(t, ExactLen("CustomerCode", "123456", 6)(context.Background()))
	assert.NotNil(t, ExactLen("CustomerCode", "12345", 6)(context.Background()))
	assert.Nil(t, ExactLen("CustomerCode", "", 6)(context.Background()), "empty value is left to Required")
}

func TestMaxLenCountsRunes(t *testing.T) {
	// 3 characters, more than 3 bytes
	assert.Nil(t, MaxLen("Manager", "əəə", 3)(context.Background()))
}

func TestExistsRule(t *testing.T) {
	t.Run("present code passes", func(t *testing.T) {
		lookup := func(context.Context, string) (bool, error) { return true, nil }
		assert.Nil(t, Exists("Manager", "A01", "Manager does not exist", lookup)(context.Background()))
	})

	t.Run("absent code fails with configured message", func(t *testing.T) {
		lookup := func(context.Context, string) (bool, error) { return false, nil }
		v := Exists("Manager", "A01", "Manager does not exist", lookup)(context.Background())
		require.NotNil(t, v)
		assert.Equal(t, "Manager does not exist", v.Message)
	})

	t.Run("lookup failure surfaces underlying error", func(t *testing.T) {
		lookup := func(context.Context, string) (bool, error) { return false, errors.New("connection refused") }
		v := Exists("Manager", "A01", "Manager does not exist", lookup)(context.Background())
		require.NotNil(t, v)
		assert.Contains(t, v.Message, "validation failed")
		assert.Contains(t, v.Message, "connection refused")
	})

	t.Run("empty value skips lookup", func(t *testing.T) {
		called := false
		lookup := func(context.Context, string) (bool, error) { called = true; return false, nil }
		assert.Nil(t, Exists("Manager", "", "Manager does not exist", lookup)(context.Background()))
		assert.False(t, called)
	})
}

func TestRunCollectsEveryViolation(t *testing.T) {
	err := Run(context.Background(),
		Required("Name", ""),
		Required("CreatedBy", ""),
		MaxLen("Manager", "TOO LONG", 3),
		Required("Segment", "RET01"),
	)
	require.Error(t, err)

	var pldErr *PayloadError
	require.ErrorAs(t, err, &pldErr)

	messages := pldErr.Messages()
	require.Len(t, messages, 3, "all violated rules must be collected, not just the first")
	assert.Equal(t, "Name is required", messages[0])
	assert.Equal(t, "CreatedBy is required", messages[1])
	assert.Equal(t, "Manager cannot be longer than 3 characters", messages[2])
}

func TestRunValidPayload(t *testing.T) {
	err := Run(context.Background(),
		Required("Name", "Samir Mammadov oğlu"),
		PersonName("Name", "Samir Mammadov oğlu"),
		MaxLen("Name", "Samir Mammadov oğlu", 130),
	)
	assert.NoError(t, err)
}
