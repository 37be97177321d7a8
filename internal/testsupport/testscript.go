package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jmorales/pizarra/kanban"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce   sync.Once
	pizarraPath string
	buildErr    error
)

// BuildPizarra builds the pizarra binary once and returns its path.
func BuildPizarra(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "pizarra-bin-")
		if err != nil {
			buildErr = err
			return
		}

		pizarraPath = filepath.Join(binDir, "pizarra")
		cmd := exec.Command("go", "build", "-o", pizarraPath, "./cmd/pizarra")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build pizarra: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return pizarraPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("PIZARRA", BuildPizarra(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "state", "pizarra"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTaskID finds a task by title in a `task list --json` dump and stores its
// ID in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var listing map[string][]kanban.Task
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &listing); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	title := args[1]
	for _, tasks := range listing {
		for _, task := range tasks {
			if task.Title == title {
				ts.Setenv(args[2], task.ID)
				return
			}
		}
	}

	ts.Fatalf("task with title %q not found", title)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
