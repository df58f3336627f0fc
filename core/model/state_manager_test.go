package model

import (
	"sync"
	"testing"
)

func TestStateManagerTransition(t *testing.T) {
	sm := NewStateManager()

	if sm.IsFitted() {
		t.Error("new state manager should not be fitted")
	}
	if err := sm.RequireFitted(); err == nil {
		t.Error("RequireFitted should fail before SetFitted")
	}

	sm.SetDimensions(3, 100)
	sm.SetFitted()

	if !sm.IsFitted() {
		t.Error("state manager should be fitted after SetFitted")
	}
	if err := sm.RequireFitted(); err != nil {
		t.Errorf("RequireFitted failed after SetFitted: %v", err)
	}

	nFeatures, nSamples := sm.GetDimensions()
	if nFeatures != 3 || nSamples != 100 {
		t.Errorf("GetDimensions = (%d, %d), want (3, 100)", nFeatures, nSamples)
	}
}

func TestStateManagerConcurrentReads(t *testing.T) {
	sm := NewStateManager()
	sm.SetFitted()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if !sm.IsFitted() {
					t.Error("fitted flag flipped back")
					return
				}
			}
		}()
	}
	wg.Wait()
}
