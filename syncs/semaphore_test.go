package syncs

import (
	"sync"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	var wg sync.WaitGroup
	n := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Acquire()
			defer sem.Release()
			n++
		}()
	}
	wg.Wait()
	if n != 16 {
		t.Fatal()
	}
}
