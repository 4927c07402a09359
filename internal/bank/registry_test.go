package bank

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func testDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"b_second.csv": validCSV,
		"a_first.csv":  validCSV,
		"notes.txt":    "not a quiz",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return dir
}

func TestRegistry_ListSources(t *testing.T) {
	r := NewRegistry(testDataDir(t))

	files, err := r.ListSources()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 quiz files, got %v", files)
	}
	if files[0] != "a_first.csv" || files[1] != "b_second.csv" {
		t.Errorf("expected sorted listing, got %v", files)
	}
}

func TestRegistry_GetCachesInstance(t *testing.T) {
	r := NewRegistry(testDataDir(t))

	b1, err := r.Get("a_first.csv")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	b2, err := r.Get("a_first.csv")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if b1 != b2 {
		t.Error("expected the same cached bank instance on repeat gets")
	}
}

func TestRegistry_UnknownSource(t *testing.T) {
	r := NewRegistry(testDataDir(t))

	for _, name := range []string{"missing.csv", "notes.txt", "../a_first.csv"} {
		if _, err := r.Get(name); !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("%q: expected ErrSourceNotFound, got %v", name, err)
		}
	}
}

func TestRegistry_BadSourceNotCached(t *testing.T) {
	dir := t.TempDir()
	bad := "id,question,choice1,choice2,choice3,choice4,answer,explanation\nq1,What?,a,b,c,d,5,Because.\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.csv"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewRegistry(dir)

	var re *RowError
	if _, err := r.Get("bad.csv"); !errors.As(err, &re) {
		t.Fatalf("expected *RowError, got %v", err)
	}

	// The failed load must not leave a partial bank behind.
	r.mu.Lock()
	_, cached := r.banks["bad.csv"]
	r.mu.Unlock()
	if cached {
		t.Error("failed load must not be cached")
	}
}

func TestRegistry_ConcurrentGet(t *testing.T) {
	r := NewRegistry(testDataDir(t))

	const workers = 16
	banks := make([]*Bank, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := r.Get("b_second.csv")
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			banks[i] = b
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if banks[i] != banks[0] {
			t.Fatal("concurrent gets must converge on a single cached instance")
		}
	}
}
