package root

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

func initCmd(t *testing.T) {
	t.Helper()
	initOnce.Do(Init)
}

func TestRootCommand_Metadata(t *testing.T) {
	initCmd(t)

	assert.Equal(t, "burp [flags] targets...", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Upload package tarballs")
	assert.NotNil(t, Cmd.RunE)
	assert.True(t, Cmd.SilenceUsage)
}

func TestRootCommand_Flags(t *testing.T) {
	initCmd(t)

	userFlag := Cmd.Flags().Lookup("user")
	require.NotNil(t, userFlag)
	assert.Equal(t, "u", userFlag.Shorthand)

	passwordFlag := Cmd.Flags().Lookup("password")
	require.NotNil(t, passwordFlag)
	assert.Equal(t, "p", passwordFlag.Shorthand)

	categoryFlag := Cmd.Flags().Lookup("category")
	require.NotNil(t, categoryFlag)
	assert.Equal(t, "c", categoryFlag.Shorthand)

	cookiesFlag := Cmd.Flags().Lookup("cookies")
	require.NotNil(t, cookiesFlag)
	assert.Equal(t, "C", cookiesFlag.Shorthand)

	keepFlag := Cmd.Flags().Lookup("keep-cookies")
	require.NotNil(t, keepFlag)
	assert.Equal(t, "k", keepFlag.Shorthand)
	assert.Equal(t, "false", keepFlag.DefValue)

	domainFlag := Cmd.Flags().Lookup("domain")
	require.NotNil(t, domainFlag)
	assert.True(t, domainFlag.Hidden)
}

func TestRunUpload_CategoryHelpListsNames(t *testing.T) {
	initCmd(t)
	t.Cleanup(func() { Category = "" })

	Category = "help"
	out := &bytes.Buffer{}
	Cmd.SetOut(out)
	Cmd.SetErr(&bytes.Buffer{})

	err := runUpload(Cmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Valid categories:")
	assert.Contains(t, out.String(), "devel")
	assert.Contains(t, out.String(), "xfce")
}

func TestRunUpload_InvalidCategoryPrintsNames(t *testing.T) {
	initCmd(t)
	t.Cleanup(func() { Category = "" })
	t.Setenv("HOME", t.TempDir()) // keep the test away from a real burp.conf
	t.Setenv("XDG_CONFIG_HOME", "")

	Category = "no-such-category"
	errOut := &bytes.Buffer{}
	Cmd.SetOut(&bytes.Buffer{})
	Cmd.SetErr(errOut)

	err := runUpload(Cmd, []string{"foo.tar.gz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
	assert.Contains(t, errOut.String(), "Valid categories:")
	assert.Contains(t, errOut.String(), "daemons")
}

func TestRunUpload_NoTargets(t *testing.T) {
	initCmd(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	Cmd.SetOut(&bytes.Buffer{})
	Cmd.SetErr(&bytes.Buffer{})

	err := runUpload(Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no targets specified")
}
