package commands

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line  string
		args  []string
		isCmd bool
	}{
		{"hello there", nil, false},
		{"/view cart", []string{"view", "cart"}, true},
		{`  /checkout --name "Ada Lovelace" --zip 02139`, []string{"checkout", "--name", "Ada Lovelace", "--zip", "02139"}, true},
		{"/", []string{}, true},
	}
	for _, tt := range tests {
		args, ok, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.isCmd, ok, tt.line)
		if tt.isCmd {
			assert.ElementsMatch(t, tt.args, args, tt.line)
		}
	}

	_, ok, err := Parse(`/checkout --name "unterminated`)
	assert.True(t, ok)
	assert.Error(t, err)
}

func greetCommand(got *[]string) Command {
	return Command{
		Name:    "greet",
		Usage:   "[--loud] NAME",
		Summary: "say hello",
		Bind: func(fs *pflag.FlagSet) RunFunc {
			loud := fs.Bool("loud", false, "shout")
			return func(args []string) error {
				msg := "hello " + args[0]
				if *loud {
					msg += "!"
				}
				*got = append(*got, msg)
				return nil
			}
		},
	}
}

func TestExecuteFreshFlagsPerCall(t *testing.T) {
	var got []string
	r := NewRegistry()
	r.Register(greetCommand(&got))

	require.NoError(t, r.Execute([]string{"greet", "--loud", "ada"}))
	require.NoError(t, r.Execute([]string{"greet", "grace"}))
	assert.Equal(t, []string{"hello ada!", "hello grace"}, got)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register(greetCommand(&got))

	assert.ErrorIs(t, r.Execute(nil), ErrMissingCommand)
	assert.ErrorIs(t, r.Execute([]string{"nope"}), ErrUnknownCommand)
	assert.ErrorContains(t, r.Execute([]string{"greet", "--volume", "3"}), "greet:")
	assert.Empty(t, got)
}

func TestHelpAndSimple(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register(greetCommand(&got))
	called := false
	r.Simple("fps", "", "toggle the FPS counter", func([]string) error {
		called = true
		return nil
	})
	require.NoError(t, r.Execute([]string{"fps"}))
	assert.True(t, called)

	var delta []string
	r.Simple("qty", "ID DELTA", "", func(args []string) error {
		delta = args
		return nil
	})
	require.NoError(t, r.Execute([]string{"qty", "3", "-1"}))
	assert.Equal(t, []string{"3", "-1"}, delta)

	assert.Equal(t, []string{"fps", "greet", "qty"}, r.Names())
	help := r.Help()
	require.Len(t, help, 3)
	assert.Contains(t, help[1], "/greet [--loud] NAME")
	assert.Contains(t, help[1], "say hello")
	assert.Contains(t, r.Flags("greet"), "--loud")
	assert.Empty(t, r.Flags("fps"))
}
