package memory

import (
	"fmt"
	"sync"
	"testing"

	"siren-api/core/domain"
	"siren-api/core/interfaces"
)

var _ interfaces.ParseCache = (*MemoryCache)(nil)

func text(s string) *domain.AttributedText {
	return domain.NewAttributedText(s, domain.Attributes{})
}

func TestNewMemoryCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"explicit", 10, 10},
		{"zero uses default", 0, DefaultCapacity},
		{"negative uses default", -1, DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMemoryCache(tt.capacity)
			if got := cache.Capacity(); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := NewMemoryCache(10)
	value := text("hello")

	cache.Add("key", value)

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("Get returned no value for existing key")
	}
	if got != value {
		t.Errorf("Get returned %v, want the stored value", got)
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache(10)

	got, ok := cache.Get("non-existent")

	if ok {
		t.Error("Get should report a miss for non-existent key")
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewMemoryCache(2)

	cache.Add("a", text("a"))
	cache.Add("b", text("b"))
	cache.Get("a")
	cache.Add("c", text("c"))

	if _, ok := cache.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, key := range []string{"a", "c"} {
		if _, ok := cache.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
	if got := cache.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestMemoryCache_Purge(t *testing.T) {
	cache := NewMemoryCache(10)
	cache.Add("a", text("a"))
	cache.Add("b", text("b"))

	cache.Purge()

	if got := cache.Len(); got != 0 {
		t.Errorf("Len() after Purge = %d, want 0", got)
	}
	if _, ok := cache.Get("a"); ok {
		t.Error("Get after Purge should miss")
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache(50)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", i, j%20)
				cache.Add(key, text(key))
				if got, ok := cache.Get(key); ok && got.String() != key {
					t.Errorf("Get(%q) = %q", key, got.String())
				}
			}
		}(i)
	}
	wg.Wait()

	if got := cache.Len(); got > 50 {
		t.Errorf("Len() = %d, exceeds capacity 50", got)
	}
}
