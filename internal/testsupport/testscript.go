package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/daydid/daydid/todo"
)

var (
	buildOnce sync.Once
	didPath   string
	buildErr  error
)

// BuildDid builds the did binary once and returns its path.
func BuildDid(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "did-bin-")
		if err != nil {
			buildErr = err
			return
		}

		didPath = filepath.Join(binDir, "did")
		cmd := exec.Command("go", "build", "-o", didPath, "./cmd/did")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build did: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return didPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("DID", BuildDid(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTodoID finds a todo by task text in a todo document and stores its
// ID in an env var.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TASK VAR")
	}

	var doc todo.Document
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		ts.Fatalf("parse todo document: %v", err)
	}

	task := args[1]
	for _, item := range doc.Todos {
		if item.Task == task {
			ts.Setenv(args[2], strconv.FormatInt(item.ID, 10))
			return
		}
	}

	ts.Fatalf("todo with task %q not found", task)
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
