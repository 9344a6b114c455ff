package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world \n"))

	s, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	s, err := GetSimpleText(r, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", s)
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer

	amount, err := GetAmount(bufio.NewReader(strings.NewReader("150\n")), "amount", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(150), amount)

	_, err = GetAmount(bufio.NewReader(strings.NewReader("lots\n")), "amount", &out)
	require.Error(t, err)
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer

	id, err := GetID(bufio.NewReader(strings.NewReader("7\n")), "id", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = GetID(bufio.NewReader(strings.NewReader("seven\n")), "id", &out)
	require.Error(t, err)
}

func TestGetUsernameList(t *testing.T) {
	var out bytes.Buffer

	list, err := GetUsernameList(bufio.NewReader(strings.NewReader("alice, bob ,carol\n")), "who", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, list)

	list, err = GetUsernameList(bufio.NewReader(strings.NewReader("\n")), "who", &out)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
