package dialog

import (
	"sync"
	"testing"
)

func TestLockRegistryReleasesEntries(t *testing.T) {
	reg := NewLockRegistry()

	release := reg.Acquire(1)
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	release()
	if reg.Len() != 0 {
		t.Fatalf("Len() after release = %d, want 0", reg.Len())
	}
}

func TestLockRegistryDoubleReleaseIsSafe(t *testing.T) {
	reg := NewLockRegistry()

	release := reg.Acquire(1)
	release()
	release()
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}

	// The lock keeps working after a double release.
	release = reg.Acquire(1)
	release()
}

func TestLockRegistrySerializesPerUser(t *testing.T) {
	reg := NewLockRegistry()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := reg.Acquire(7)
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
	if reg.Len() != 0 {
		t.Fatalf("Len() after all releases = %d, want 0", reg.Len())
	}
}

func TestLockRegistryIndependentUsers(t *testing.T) {
	reg := NewLockRegistry()

	releaseA := reg.Acquire(1)
	// A held lock for one user must not block another.
	releaseB := reg.Acquire(2)
	releaseB()
	releaseA()

	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
}
