package serialport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	t.Run("no_device", func(t *testing.T) {
		prefix := filepath.Join(t.TempDir(), "ttyACM")
		_, err := discover(prefix)
		if !errors.Is(err, ErrNoDevice) {
			t.Errorf("error = %v, want ErrNoDevice", err)
		}
	})

	t.Run("picks_first_existing", func(t *testing.T) {
		dir := t.TempDir()
		prefix := filepath.Join(dir, "ttyACM")
		for _, n := range []string{"ttyACM2", "ttyACM5"} {
			if err := os.WriteFile(filepath.Join(dir, n), nil, 0o600); err != nil {
				t.Fatal(err)
			}
		}

		device, err := discover(prefix)
		if err != nil {
			t.Fatalf("discover returned error: %v", err)
		}
		if device != prefix+"2" {
			t.Errorf("device = %q, want %q", device, prefix+"2")
		}
	})
}
