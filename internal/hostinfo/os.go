package hostinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Art selects the logo printed beside the probe.
type Art int

// Known logos.
const (
	ArtUnknown Art = iota
	ArtArchLinux
	ArtAlpineLinux
	ArtDebian
	ArtWindows
	ArtMacOS
)

func (a Art) String() string {
	switch a {
	case ArtArchLinux:
		return "arch"
	case ArtAlpineLinux:
		return "alpine"
	case ArtDebian:
		return "debian"
	case ArtWindows:
		return "windows"
	case ArtMacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// ArtFor picks the logo for an OS name (as found in os-release) and kind
// (runtime.GOOS spelling).
func ArtFor(name, kind string) Art {
	switch name {
	case "Arch Linux":
		return ArtArchLinux
	case "Alpine Linux":
		return ArtAlpineLinux
	case "Debian GNU/Linux":
		return ArtDebian
	}

	switch kind {
	case "windows":
		return ArtWindows
	case "darwin":
		return ArtMacOS
	}
	return ArtUnknown
}

// OperatingSystem describes the running OS.
type OperatingSystem struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Kernel  string `json:"kernel,omitempty"`
	Version string `json:"version,omitempty"`
	Arch    string `json:"arch,omitempty"`
	Art     Art    `json:"-"`
}

// ReadOS reads the operating system section.
func ReadOS() (*OperatingSystem, error) {
	hi, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("reading host info: %w", err)
	}

	name, err := osName(hi)
	if err != nil {
		return nil, err
	}

	return &OperatingSystem{
		Name:    name,
		Kind:    hi.OS,
		Kernel:  hi.KernelVersion,
		Version: hi.PlatformVersion,
		Arch:    hi.KernelArch,
		Art:     ArtFor(name, hi.OS),
	}, nil
}

// ReadHostname returns the host name.
func ReadHostname() (string, error) {
	hi, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("reading host info: %w", err)
	}
	if hi.Hostname == "" {
		return "", errors.New("empty hostname")
	}
	return hi.Hostname, nil
}

// releaseValue returns the value of key in an os-release style
// KEY=VALUE file, unquoted.
func releaseValue(r io.Reader, key string) (string, bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		k, v, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok || k != key {
			continue
		}
		v = strings.TrimSpace(v)
		v = strings.Trim(v, `"'`)
		return strings.TrimSpace(v), v != ""
	}
	return "", false
}
