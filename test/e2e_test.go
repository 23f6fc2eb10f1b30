package test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmemtools/pmemview/internal/cli"
	"github.com/pmemtools/pmemview/internal/cli/commands"
	"github.com/pmemtools/pmemview/pkg/pool"
)

// writePool creates a pool file with a valid header, a BTT-style map
// region, and zero padding in between.
func writePool(t *testing.T, poolType string) string {
	t.Helper()

	data := make([]byte, pool.HeaderSize*2)
	copy(data[0:], poolType)
	binary.LittleEndian.PutUint32(data[8:], 1)
	for i := 0; i < 16; i++ {
		data[40+i] = byte(0x10 + i)
	}
	crtime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Unix()
	binary.LittleEndian.PutUint64(data[56:], uint64(crtime))
	binary.LittleEndian.PutUint64(data[pool.HeaderChecksumOff:],
		pool.CheckSum(data[:pool.HeaderSize], pool.HeaderChecksumOff))

	// A few map entries after the header.
	binary.LittleEndian.PutUint32(data[pool.HeaderSize:], 0x42|pool.BTTMapEntryNormal)
	binary.LittleEndian.PutUint32(data[pool.HeaderSize+4:], 0x43|pool.BTTMapEntryZero)

	path := filepath.Join(t.TempDir(), "pool.set")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write pool file: %v", err)
	}
	return path
}

// runRoot executes the full CLI against args and returns its output.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestE2E_InfoThenCheck(t *testing.T) {
	defer func() { commands.ExitCode = 0 }()
	path := writePool(t, pool.BlkSignature)

	out, err := runRoot(t, "info", path)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	for _, want := range []string{"PMEMBLK", "blk", "[OK]", "10111213-1415-1617-1819-1a1b1c1d1e1f"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}

	out, err = runRoot(t, "check", path)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if commands.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", commands.ExitCode)
	}
	if !strings.Contains(out, ": consistent") {
		t.Errorf("check output = %q", out)
	}
}

func TestE2E_CheckCorruptedPool(t *testing.T) {
	defer func() { commands.ExitCode = 0 }()
	path := writePool(t, pool.ObjSignature)

	// Flip a byte inside the checksummed region.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read pool file: %v", err)
	}
	data[100] ^= 0xff
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to rewrite pool file: %v", err)
	}

	out, err := runRoot(t, "check", path)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if commands.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", commands.ExitCode)
	}
	if !strings.Contains(out, "not consistent") {
		t.Errorf("check output = %q", out)
	}
}

func TestE2E_DumpMapRegion(t *testing.T) {
	path := writePool(t, pool.LogSignature)

	out, err := runRoot(t, "dump", path,
		"--map", "-o", "4096", "-l", "8")
	if err != nil {
		t.Fatalf("dump error = %v", err)
	}
	if !strings.Contains(out, "0x00000042 state: normal") {
		t.Errorf("dump output missing map entry:\n%s", out)
	}
	if !strings.Contains(out, "0x00000043 state: zero") {
		t.Errorf("dump output missing map entry:\n%s", out)
	}
}

func TestE2E_DumpHexWithElision(t *testing.T) {
	path := writePool(t, pool.LogSignature)

	// The zero padding between header fields collapses into "*".
	out, err := runRoot(t, "dump", path, "-o", "64", "-l", "512", "--sep")
	if err != nil {
		t.Fatalf("dump error = %v", err)
	}
	if !strings.Contains(out, "*\n") {
		t.Errorf("dump output missing elision marker:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("-", 77)) {
		t.Errorf("dump output missing separator:\n%s", out)
	}
	if !strings.Contains(out, "00000040  ") {
		t.Errorf("dump output missing start offset label:\n%s", out)
	}
}
