package ocr

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestPool_Scan(t *testing.T) {
	path := writePNG(t, t.TempDir(), "a.png")
	engines := []*fakeEngine{}
	p, err := NewPool(3, func() (*Recognizer, error) {
		e := &fakeEngine{results: map[string][]Detection{"a.png": fragments("quick", "fox")}}
		engines = append(engines, e)
		return NewRecognizer(e), nil
	})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	if p.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", p.Size())
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Scan(context.Background(), path)
			if err != nil {
				t.Errorf("Scan failed: %v", err)
				return
			}
			if got != "quick fox" {
				t.Errorf("Scan() = %q", got)
			}
		}()
	}
	wg.Wait()

	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	for i, e := range engines {
		if !e.closed {
			t.Errorf("engine %d not closed", i)
		}
	}
}

func TestNewPool_FailureClosesBuilt(t *testing.T) {
	built := &fakeEngine{}
	calls := 0
	_, err := NewPool(2, func() (*Recognizer, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("no model")
		}
		return NewRecognizer(built), nil
	})
	if err == nil {
		t.Fatal("NewPool should fail")
	}
	if !built.closed {
		t.Error("recognizers built before the failure should be closed")
	}
}
