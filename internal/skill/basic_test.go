package skill

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcho(t *testing.T) {
	out, err := Echo{}.Execute(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Echo: hello", out)
}

func TestCurrentTime(t *testing.T) {
	out, err := CurrentTime{}.Execute(context.Background(), "", nil)
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339, out)
	assert.NoError(t, err)
}

func TestCurrentTime_Timezone(t *testing.T) {
	out, err := CurrentTime{}.Execute(context.Background(), "", map[string]string{"timezone": "UTC"})
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC3339, out)
	require.NoError(t, err)
	_, offset := parsed.Zone()
	assert.Equal(t, 0, offset)

	_, err = CurrentTime{}.Execute(context.Background(), "", map[string]string{"timezone": "Not/AZone"})
	assert.Error(t, err)
}

func TestCalculator(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1+1", "2"},
		{"2 * 3 + 4", "10"},
		{"2 * (3 + 4)", "14"},
		{"10 / 4", "2.5"},
		{"-3 + 5", "2"},
		{"2 * -3", "-6"},
		{"1.5 + 2.25", "3.75"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			out, err := Calculator{}.Execute(context.Background(), tt.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCalculator_Errors(t *testing.T) {
	exprs := []string{
		"",
		"1 + ",
		"(1 + 2",
		"1 / 0",
		"2 ** 3",
		"import os",
		"1; 2",
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := Calculator{}.Execute(context.Background(), expr, nil)
			assert.Error(t, err)
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewInMemoryRegistry(Defaults()...)

	s, ok := r.Get("calculator")
	require.True(t, ok)
	assert.Equal(t, "calculator", s.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	names := make([]string, 0)
	for _, s := range r.List() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"calculator", "current_time", "echo"}, names)
}
