package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStateDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	dir, err := DefaultStateDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".local", "state", "daydid")
	if dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}

func TestHomeDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	home, err := HomeDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if home != filepath.Join("/tmp", "test-home") {
		t.Fatalf("expected %s, got %s", filepath.Join("/tmp", "test-home"), home)
	}
}

func TestDefaultDataFileUsesStateDir(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	file, err := DefaultDataFile()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".local", "state", "daydid", "todos.json")
	if file != expected {
		t.Fatalf("expected %s, got %s", expected, file)
	}
}

func TestDefaultConfigFileUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	file, err := DefaultConfigFile()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "daydid", "config.toml")
	if file != expected {
		t.Fatalf("expected %s, got %s", expected, file)
	}
}

func TestResolveWithDefault(t *testing.T) {
	t.Run("returns override when provided", func(t *testing.T) {
		result, err := ResolveWithDefault("/custom/path", DefaultStateDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "/custom/path" {
			t.Fatalf("expected /custom/path, got %s", result)
		}
	})

	t.Run("calls default function when override is empty", func(t *testing.T) {
		t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

		result, err := ResolveWithDefault("", DefaultStateDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := filepath.Join("/tmp", "test-home", ".local", "state", "daydid")
		if result != expected {
			t.Fatalf("expected %s, got %s", expected, result)
		}
	})

	t.Run("propagates error from default function", func(t *testing.T) {
		errorFn := func() (string, error) {
			return "", os.ErrNotExist
		}

		_, err := ResolveWithDefault("", errorFn)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err != os.ErrNotExist {
			t.Fatalf("expected os.ErrNotExist, got %v", err)
		}
	})
}
