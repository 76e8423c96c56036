package caller

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
)

// Info describes who invoked the program.
type Info struct {
	User  string `json:"user"`
	Shell string `json:"shell"`
}

// Lookup returns the invoking user and the short name of the parent shell.
func Lookup(r *Resolver) (Info, error) {
	name, err := userName()
	if err != nil {
		return Info{}, err
	}

	shell, err := shellName(r)
	if err != nil {
		return Info{}, err
	}

	return Info{User: name, Shell: shell}, nil
}

func userName() (string, error) {
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}

	uid := os.Geteuid()
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", fmt.Errorf("unable to get username from UID %d: %w", uid, err)
	}
	return u.Username, nil
}

func shellName(r *Resolver) (string, error) {
	if argv0 := os.Getenv("0"); argv0 != "" {
		return trimLoginPrefix(filepath.Base(argv0)), nil
	}

	ppid := os.Getppid()
	name, err := r.Resolve(ppid)
	if err != nil {
		return "", fmt.Errorf("resolving calling shell (pid %d): %w", ppid, err)
	}
	return trimLoginPrefix(name), nil
}

// trimLoginPrefix drops the '-' login shells carry in argv[0].
func trimLoginPrefix(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "-")
}
