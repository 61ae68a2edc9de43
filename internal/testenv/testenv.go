// Package testenv serializes tests that mutate process environment variables.
package testenv

import (
	"os"
	"sync"
	"testing"
)

// mu serializes every mutation made through With within one test binary.
// go test builds a binary per package, so the gate covers one package's tests.
var mu sync.Mutex

// Value returns a pointer suitable for the vars map of With.
func Value(v string) *string {
	return &v
}

type snapshot struct {
	key     string
	value   string
	present bool
}

// With applies vars (a nil value removes the variable), runs fn and restores
// every touched variable to its previous state. Restoration happens even when
// fn panics or calls t.FailNow.
func With(t testing.TB, vars map[string]*string, fn func()) {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	saved := make([]snapshot, 0, len(vars))
	defer func() {
		for _, s := range saved {
			restore(t, s)
		}
	}()

	for key, v := range vars {
		old, ok := os.LookupEnv(key)
		saved = append(saved, snapshot{key: key, value: old, present: ok})

		var err error
		if v == nil {
			err = os.Unsetenv(key)
		} else {
			err = os.Setenv(key, *v)
		}
		if err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	fn()
}

func restore(t testing.TB, s snapshot) {
	var err error
	if s.present {
		err = os.Setenv(s.key, s.value)
	} else {
		err = os.Unsetenv(s.key)
	}
	if err != nil {
		t.Errorf("restore %s: %v", s.key, err)
	}
}
