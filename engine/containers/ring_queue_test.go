package containers

import "testing"

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](4)

	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("enqueue %d failed: %v", i, err)
		}
	}
	if rq.Len() != 3 {
		t.Errorf("expected length 3, got %d", rq.Len())
	}

	for want := 1; want <= 3; want++ {
		got, err := rq.Dequeue()
		if err != nil {
			t.Fatalf("dequeue failed: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}
	if !rq.IsEmpty() {
		t.Error("queue should be empty after draining")
	}
}

func TestRingQueueFullAndEmpty(t *testing.T) {
	rq := NewRingQueue[string](2)

	if _, err := rq.Dequeue(); err == nil {
		t.Error("dequeue on empty queue must fail")
	}
	if _, err := rq.Peek(); err == nil {
		t.Error("peek on empty queue must fail")
	}

	if err := rq.Enqueue("a"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if err := rq.Enqueue("b"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if !rq.IsFull() {
		t.Error("queue should report full at capacity")
	}
	if err := rq.Enqueue("c"); err == nil {
		t.Error("enqueue past capacity must fail")
	}

	if got, _ := rq.Peek(); got != "a" {
		t.Errorf("peek expected 'a', got %q", got)
	}
	if rq.Len() != 2 {
		t.Errorf("peek must not consume, length is %d", rq.Len())
	}
}

func TestRingQueueWrapsAround(t *testing.T) {
	rq := NewRingQueue[int](3)

	for cycle := 0; cycle < 5; cycle++ {
		base := cycle * 10
		for i := 0; i < 3; i++ {
			if err := rq.Enqueue(base + i); err != nil {
				t.Fatalf("cycle %d: enqueue failed: %v", cycle, err)
			}
		}
		for i := 0; i < 3; i++ {
			got, err := rq.Dequeue()
			if err != nil {
				t.Fatalf("cycle %d: dequeue failed: %v", cycle, err)
			}
			if got != base+i {
				t.Errorf("cycle %d: expected %d, got %d", cycle, base+i, got)
			}
		}
	}
}
