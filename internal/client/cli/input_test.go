package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  12 Main St \n"), "Address", &out)
	require.NoError(t, err)
	assert.Equal(t, "  12 Main St ", got, "values are kept verbatim")
	assert.Equal(t, "Address\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	terminalPasswords(t, "s3cret")
	var out bytes.Buffer

	pw, err := GetPassword(rdr(""), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_Piped(t *testing.T) {
	pipedPasswords(t)
	var out bytes.Buffer

	pw, err := GetPassword(rdr("from pipe\nnext\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("from pipe"), pw)

	_, err = GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_TypedAhead(t *testing.T) {
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) {
		t.Fatal("terminal must not be read while input is buffered")
		return nil, nil
	}

	in := rdr("y\nsecret\nnext\n")
	_, err := readLine(in)
	require.NoError(t, err)

	pw, err := GetPassword(in, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)

	rest, err := readLine(in)
	require.NoError(t, err)
	assert.Equal(t, "next", rest)
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" y \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			var out bytes.Buffer
			got, err := AskYesNo(rdr(tt.in), "Confirm?", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Confirm? [y/N] ", out.String())
		})
	}

	_, err := AskYesNo(rdr(""), "Confirm?", &bytes.Buffer{})
	require.Error(t, err)
}
