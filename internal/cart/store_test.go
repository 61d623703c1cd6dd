package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStorePreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	for i := 0; i < 5; i++ {
		err := store.Append(context.Background(), SavedCart{ID: fmt.Sprintf("cart_%d", i)})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	carts, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	for i, record := range carts {
		if record.ID != fmt.Sprintf("cart_%d", i) {
			t.Fatalf("order broken at %d: %q", i, record.ID)
		}
	}
}

func TestMemoryStoreConcurrentAppendsLoseNothing(t *testing.T) {
	store := NewMemoryStore()
	const writers = 16

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Append(context.Background(), SavedCart{ID: fmt.Sprintf("cart_w%d", n)})
		}(i)
	}
	wg.Wait()

	carts, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(carts) != writers {
		t.Fatalf("expected %d records, got %d", writers, len(carts))
	}
}

func TestMemoryStoreListAllReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Append(context.Background(), SavedCart{ID: "cart_a"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	first, _ := store.ListAll(context.Background())
	first[0].ID = "mutated"

	second, _ := store.ListAll(context.Background())
	if second[0].ID != "cart_a" {
		t.Fatalf("store leaked internal slice: %q", second[0].ID)
	}
}
