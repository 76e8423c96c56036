package hostinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/procfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }

func TestCountCores(t *testing.T) {
	tests := []struct {
		name        string
		infos       []procfs.CPUInfo
		wantCores   int
		wantThreads int
	}{
		{
			name: "hyperthreaded single socket",
			infos: []procfs.CPUInfo{
				{PhysicalID: "0", CoreID: "0"},
				{PhysicalID: "0", CoreID: "1"},
				{PhysicalID: "0", CoreID: "0"},
				{PhysicalID: "0", CoreID: "1"},
			},
			wantCores:   2,
			wantThreads: 4,
		},
		{
			name: "two sockets reuse core ids",
			infos: []procfs.CPUInfo{
				{PhysicalID: "0", CoreID: "0"},
				{PhysicalID: "0", CoreID: "1"},
				{PhysicalID: "1", CoreID: "0"},
				{PhysicalID: "1", CoreID: "1"},
			},
			wantCores:   4,
			wantThreads: 4,
		},
		{
			name:        "no core ids",
			infos:       []procfs.CPUInfo{{Processor: 0}, {Processor: 1}, {Processor: 2}},
			wantCores:   3,
			wantThreads: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cores, threads := countCores(tt.infos)
			assert.Equal(t, tt.wantCores, cores)
			assert.Equal(t, tt.wantThreads, threads)
		})
	}
}

func TestMemoryFromMeminfo(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		mem, err := memoryFromMeminfo(procfs.Meminfo{MemTotal: u64(1000), MemAvailable: u64(400)})
		require.NoError(t, err)
		assert.Equal(t, &Memory{Total: 1000 * 1024, Available: 400 * 1024, Used: 600 * 1024}, mem)
	})

	t.Run("free plus caches", func(t *testing.T) {
		mem, err := memoryFromMeminfo(procfs.Meminfo{
			MemTotal: u64(1000),
			MemFree:  u64(100),
			Buffers:  u64(50),
			Cached:   u64(150),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(300*1024), mem.Available)
		assert.Equal(t, uint64(700*1024), mem.Used)
	})

	t.Run("available capped at total", func(t *testing.T) {
		mem, err := memoryFromMeminfo(procfs.Meminfo{MemTotal: u64(100), MemAvailable: u64(200)})
		require.NoError(t, err)
		assert.Equal(t, mem.Total, mem.Available)
		assert.Zero(t, mem.Used)
	})

	t.Run("no total", func(t *testing.T) {
		_, err := memoryFromMeminfo(procfs.Meminfo{MemAvailable: u64(200)})
		assert.Error(t, err)
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReleaseName(t *testing.T) {
	t.Run("os-release", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "etc/os-release"), "NAME=\"Arch Linux\"\nID=arch\n")
		writeFile(t, filepath.Join(root, "etc/lsb-release"), "DISTRIB_DESCRIPTION=\"Something else\"\n")

		name, err := releaseName(root)
		require.NoError(t, err)
		assert.Equal(t, "Arch Linux", name)
	})

	t.Run("lsb-release fallback", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "etc/lsb-release"), "DISTRIB_ID=Ubuntu\nDISTRIB_DESCRIPTION=\"Ubuntu 22.04.4 LTS\"\n")

		name, err := releaseName(root)
		require.NoError(t, err)
		assert.Equal(t, "Ubuntu 22.04.4 LTS", name)
	})

	t.Run("nothing", func(t *testing.T) {
		_, err := releaseName(t.TempDir())
		assert.Error(t, err)
	})
}

func TestMotherboardFrom(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "class/dmi/id/board_vendor"), "ASUSTeK COMPUTER INC.\n")
	writeFile(t, filepath.Join(root, "class/dmi/id/board_name"), "ROG STRIX B550-F\n")

	board, err := motherboardFrom(root)
	require.NoError(t, err)
	assert.Equal(t, "ASUSTeK COMPUTER INC. ROG STRIX B550-F", board)
}

func TestMotherboardFromEmptyDMI(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "class/dmi/id/bios_vendor"), "SeaBIOS\n")

	_, err := motherboardFrom(root)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLinuxCPUQueries(t *testing.T) {
	if _, err := os.Stat("/proc/cpuinfo"); err != nil {
		t.Skip("no /proc/cpuinfo")
	}

	cores, threads, err := CPUCount()
	require.NoError(t, err)
	assert.Positive(t, cores)
	assert.GreaterOrEqual(t, threads, cores)
}
