package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate", "user"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	add, _, err := root.Find([]string{"user", "add"})
	require.NoError(t, err)
	assert.Equal(t, "ROLE_USER", add.Flags().Lookup("authorities").DefValue)
}

func TestUserAdd_RequiresCredentials(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"user", "add", "--name", "Nobody"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}
