package accountfile

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/storage/account"
)

const sampleFile = `00001 Alice                A 00100.00
00004 Bob Builder          D 00025.50
short line
00007 Carol                A 12345.67
END_OF_FILE
00009 Ignored              A 00001.00
`

func TestLoad_ParsesColumns(t *testing.T) {
	records, err := Load(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, account.Number(1), records[0].Number)
	assert.Equal(t, "Alice", records[0].HolderName)
	assert.Equal(t, account.StatusActive, records[0].Status)
	assert.True(t, records[0].Balance.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, "Bob Builder", records[1].HolderName)
	assert.Equal(t, account.StatusDisabled, records[1].Status)

	assert.Equal(t, account.Number(7), records[2].Number)
}

func TestLoad_StopsAtBlankLine(t *testing.T) {
	records, err := Load(strings.NewReader("00001 Alice                A 00100.00\n\n00002 Bob                  A 00001.00\n"))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoad_BadStatus(t *testing.T) {
	_, err := Load(strings.NewReader("00001 Alice                X 00100.00\n"))
	assert.ErrorIs(t, err, bankerr.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoad_BadBalance(t *testing.T) {
	_, err := Load(strings.NewReader("00001 Alice                A 00abc.00\n"))
	assert.ErrorIs(t, err, bankerr.ErrInvalidInput)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestWrite_RoundTrip(t *testing.T) {
	accounts := []account.Account{
		{Number: 1, HolderName: "Alice", Balance: decimal.RequireFromString("100"), Status: account.StatusActive},
		{Number: 12, HolderName: "Bob Builder", Balance: decimal.RequireFromString("5.5"), Status: account.StatusDisabled},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, accounts))
	assert.Equal(t,
		"00001 Alice                A 00100.00\n"+
			"00012 Bob Builder          D 00005.50\n"+
			"END_OF_FILE\n",
		buf.String())

	records, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, account.Number(12), records[1].Number)
	assert.True(t, records[1].Balance.Equal(decimal.RequireFromString("5.50")))
}

func TestWrite_MultibyteHolderRoundTrip(t *testing.T) {
	accounts := []account.Account{
		{Number: 3, HolderName: "José", Balance: decimal.RequireFromString("10"), Status: account.StatusActive},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, accounts))
	assert.Equal(t, "00003 José                A 00010.00\nEND_OF_FILE\n", buf.String())

	records, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "José", records[0].HolderName)
	assert.Equal(t, account.StatusActive, records[0].Status)
	assert.True(t, records[0].Balance.Equal(decimal.RequireFromString("10")))
}
