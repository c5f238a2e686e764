package bus

import (
	"testing"

	"github.com/framepeach/framepeach/internal/editor/scene"
)

func TestPublish_DeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	b := New()
	var order []string
	b.Subscribe(func(e Event) { order = append(order, "first") })
	b.Subscribe(func(e Event) { order = append(order, "second") })

	b.Publish(NewProject{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order = %v", order)
	}
}

func TestPublish_ReentrantQueuedAfterCurrentEvent(t *testing.T) {
	t.Parallel()

	b := New()
	var seen []string

	b.Subscribe(func(e Event) {
		switch e.(type) {
		case PositionUpdated:
			seen = append(seen, "a:position")
			// a handler publishing mid-dispatch must not preempt the
			// current event's remaining deliveries
			b.Publish(SceneUpdated{})
		case SceneUpdated:
			seen = append(seen, "a:scene")
		}
	})
	b.Subscribe(func(e Event) {
		switch e.(type) {
		case PositionUpdated:
			seen = append(seen, "b:position")
		case SceneUpdated:
			seen = append(seen, "b:scene")
		}
	})

	b.Publish(PositionUpdated{Axis: scene.AxisX, Value: 5})

	want := []string{"a:position", "b:position", "a:scene", "b:scene"}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", seen, want)
		}
	}
}

func TestPublish_HandlerSubscribedLaterMissesEarlierEvents(t *testing.T) {
	t.Parallel()

	b := New()
	count := 0

	b.Publish(NewProject{})

	b.Subscribe(func(e Event) { count++ })
	b.Publish(NewProject{})

	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}
