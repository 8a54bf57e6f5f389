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
	got, err := GetSimpleText(rdr("Lote Norte\n"), "Nombre?", &out)
	require.NoError(t, err)
	assert.Equal(t, "Lote Norte", got)
	assert.Contains(t, out.String(), "Nombre?")
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("sin salto"), "Nombre?", &out)
	require.NoError(t, err)
	assert.Equal(t, "sin salto", got)
}

func TestGetDefaultedText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"empty keeps default", "\n", "Lote Sur", "Lote Sur"},
		{"input overrides default", "Lote Este\n", "Lote Sur", "Lote Este"},
		{"empty with no default", "\n", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetDefaultedText(rdr(tc.input), "Nombre", tc.def, &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetDefaultedTextShowsDefault(t *testing.T) {
	var out bytes.Buffer
	_, err := GetDefaultedText(rdr("\n"), "Nombre", "Lote Sur", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Lote Sur]")
}

func TestGetEmail(t *testing.T) {
	var out bytes.Buffer
	got, err := GetEmail(rdr("ana@campo.es\n"), "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "ana@campo.es", got)

	_, err = GetEmail(rdr("no-es-un-email\n"), "Email", &out)
	require.ErrorIs(t, err, errInvalidEmail)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"s\n", false, true},
		{"sí\n", false, true},
		{"si\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"cualquiercosa\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
	}

	for _, tc := range tests {
		var out bytes.Buffer
		got, err := GetBool(rdr(tc.input), "¿En venta?", tc.def, &out)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q def %v", tc.input, tc.def)
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, Confirm(rdr("s\n"), "¿Seguro?", &out))
	assert.False(t, Confirm(rdr("\n"), "¿Seguro?", &out), "default declines")
	assert.False(t, Confirm(rdr(""), "¿Seguro?", &out), "read error declines")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
