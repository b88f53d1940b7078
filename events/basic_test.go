package events

import "testing"

func TestSubscribeAndEmit(t *testing.T) {
	type TestEvent1 struct{}
	type TestEvent2 struct{}

	bus := NewBus()

	sub1, err := bus.Subscribe(&TestEvent1{})
	if err != nil {
		t.Fatal(err)
	}

	sub2, err := bus.Subscribe(&TestEvent2{})
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		bus.Emit(&TestEvent1{})
		bus.Emit(&TestEvent2{})
	}()

	event1 := <-sub1.Out()
	_, ok := event1.(*TestEvent1)
	if !ok {
		t.Error("Event is wrong type")
	}

	event2 := <-sub2.Out()
	_, ok = event2.(*TestEvent2)
	if !ok {
		t.Error("Event is wrong type")
	}

	if err := sub1.Close(); err != nil {
		t.Error(err)
	}
	if err := sub2.Close(); err != nil {
		t.Error(err)
	}
}

func TestMultiTypeSubscription(t *testing.T) {
	type TestEvent1 struct{}
	type TestEvent2 struct{}

	bus := NewBus()

	sub, err := bus.Subscribe([]interface{}{&TestEvent1{}, &TestEvent2{}})
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	go func() {
		bus.Emit(&TestEvent1{})
		bus.Emit(&TestEvent2{})
	}()

	event1 := <-sub.Out()
	if _, ok := event1.(*TestEvent1); !ok {
		t.Error("Event is wrong type")
	}
	event2 := <-sub.Out()
	if _, ok := event2.(*TestEvent2); !ok {
		t.Error("Event is wrong type")
	}
}

func TestSubscribeNonPointer(t *testing.T) {
	type TestEvent struct{}

	bus := NewBus()
	if _, err := bus.Subscribe(TestEvent{}); err == nil {
		t.Error("Expected error subscribing with non-pointer type")
	}
}
