package output

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mrzor/rinfo/internal/hostinfo"
)

// artGap is the number of spaces between the logo and the text.
const artGap = 3

const mib = 1 << 20

// TextFormatter prints one "Key: value" line per field.
type TextFormatter struct {
	// OmitOS hides the OS line; the OS section may still be present to
	// pick the logo.
	OmitOS      bool
	OmitArt     bool
	VerticalArt bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, r *Report) error {
	body := strings.Join(f.Lines(r), "\n")

	var out string
	switch {
	case f.OmitArt:
		out = body + "\n"
	case f.VerticalArt:
		out = Art(artOf(r.Info)) + "\n" + body + "\n"
	default:
		out = WithArt(Art(artOf(r.Info)), body)
	}

	_, err := io.WriteString(w, out)
	return err
}

func artOf(info *hostinfo.Info) hostinfo.Art {
	if info == nil || info.OS == nil {
		return hostinfo.ArtUnknown
	}
	return info.OS.Art
}

// Lines renders the report without the logo.
func (f *TextFormatter) Lines(r *Report) []string {
	info := r.Info
	if info == nil {
		info = &hostinfo.Info{}
	}

	var lines []string
	for _, section := range hostinfo.Sections {
		if section == hostinfo.SectionOS && f.OmitOS {
			continue
		}
		if err, failed := info.Errors[section]; failed {
			lines = append(lines, fmt.Sprintf("%s: error: %v", sectionLabel(section), err))
			continue
		}
		lines = append(lines, sectionLines(info, section)...)
	}

	for _, kv := range r.Attributes {
		lines = append(lines, fmt.Sprintf("%s: %s", kv.Key, kv.Value.Emit()))
	}
	return lines
}

func sectionLabel(s hostinfo.Section) string {
	switch s {
	case hostinfo.SectionCPU:
		return "CPU"
	case hostinfo.SectionMemory:
		return "RAM"
	case hostinfo.SectionMotherboard:
		return "Motherboard"
	case hostinfo.SectionIP:
		return "IP"
	case hostinfo.SectionHostname:
		return "Host"
	case hostinfo.SectionCaller:
		return "Caller"
	case hostinfo.SectionOS:
		return "OS"
	}
	return string(s)
}

func sectionLines(info *hostinfo.Info, section hostinfo.Section) []string {
	switch section {
	case hostinfo.SectionCPU:
		if info.CPU == nil {
			return nil
		}
		cpu := fmt.Sprintf("CPU: %s (%dC/%dT)", info.CPU.Name, info.CPU.Cores, info.CPU.Threads)
		if info.CPU.ClockMHz > 0 {
			cpu += fmt.Sprintf(" @ %d MHz", info.CPU.ClockMHz)
		}
		lines := []string{cpu}
		if info.CPU.Uptime > 0 {
			lines = append(lines, "Uptime: "+FormatUptime(info.CPU.Uptime))
		}
		return lines
	case hostinfo.SectionMemory:
		if info.Memory == nil {
			return nil
		}
		return []string{fmt.Sprintf("RAM: %d/%d MiB (%d MiB available)",
			info.Memory.Used/mib, info.Memory.Total/mib, info.Memory.Available/mib)}
	case hostinfo.SectionMotherboard:
		return optionalLine("Motherboard", info.Motherboard)
	case hostinfo.SectionIP:
		return optionalLine("IP", info.IP)
	case hostinfo.SectionHostname:
		return optionalLine("Host", info.Hostname)
	case hostinfo.SectionCaller:
		if info.Caller == nil {
			return nil
		}
		return []string{"User: " + info.Caller.User, "Shell: " + info.Caller.Shell}
	case hostinfo.SectionOS:
		if info.OS == nil {
			return nil
		}
		if info.OS.Kernel == "" {
			return []string{"OS: " + info.OS.Name}
		}
		return []string{fmt.Sprintf("OS: %s (%s)", info.OS.Name, info.OS.Kernel)}
	}
	return nil
}

func optionalLine(label, value string) []string {
	if value == "" {
		return nil
	}
	return []string{label + ": " + value}
}

// FormatUptime renders d as "1d 2h 3m", dropping leading zero units.
// Durations under a minute are shown in seconds.
func FormatUptime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}

	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// WithArt lays art and text side by side. Every text line starts artGap
// columns after the widest art line; the longer of the two sets the height.
func WithArt(art, text string) string {
	artLines := strings.Split(art, "\n")
	textLines := strings.Split(text, "\n")

	width := 0
	for _, l := range artLines {
		width = max(width, utf8.RuneCountInString(l))
	}

	var b strings.Builder
	for i := 0; i < len(artLines) || i < len(textLines); i++ {
		var left, right string
		if i < len(artLines) {
			left = artLines[i]
		}
		if i < len(textLines) {
			right = textLines[i]
		}

		line := left
		if right != "" {
			line += strings.Repeat(" ", width-utf8.RuneCountInString(left)+artGap) + right
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
