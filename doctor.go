package polint

import (
	"context"
	"encoding/json"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DoctorCheck represents the result of checking a single external command.
type DoctorCheck struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Path     string `json:"path"`
	Version  string `json:"version"`
	OK       bool   `json:"ok"`
}

type doctorProbe struct {
	name     string
	required bool
}

// RunDoctor checks the external commands the tool can cooperate with and
// returns the results. Nothing is required: the linter itself has no
// external dependencies. The GNU gettext tools are probed because they
// are the usual companions when working on .po files, plus the platform
// notifier command used by watch --notify local. Extra command names can
// be passed for additional optional probes.
func RunDoctor(extra ...string) []DoctorCheck {
	commands := []doctorProbe{
		{"msgfmt", false},
		{"msgcat", false},
		{"msgattrib", false},
	}
	switch runtime.GOOS {
	case "darwin":
		commands = append(commands, doctorProbe{"osascript", false})
	case "linux":
		commands = append(commands, doctorProbe{"notify-send", false})
	}
	for _, name := range extra {
		commands = append(commands, doctorProbe{name, false})
	}

	checks := make([]DoctorCheck, 0, len(commands))
	for _, cmd := range commands {
		check := DoctorCheck{
			Name:     cmd.name,
			Required: cmd.required,
		}

		path, err := exec.LookPath(cmd.name)
		if err != nil {
			checks = append(checks, check)
			continue
		}

		check.Path = path
		check.OK = true

		// Try to get version (best-effort, 500ms timeout)
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		out, err := exec.CommandContext(ctx, path, "--version").Output()
		cancel()
		if err == nil {
			firstLine := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
			check.Version = firstLine
		}

		checks = append(checks, check)
	}

	return checks
}

// FormatDoctorJSON returns the checks as a JSON array string.
func FormatDoctorJSON(checks []DoctorCheck) (string, error) {
	data, err := json.Marshal(checks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
