package tactics

import (
	"fmt"
	"strings"
	"sync"
)

// Event is one recorded designer event.
type Event struct {
	Frame    int
	Player   string  // player label e.g. "ST#9", or "--" for designer-wide events
	Category string  // lifecycle, formation, transition, input, physics, overlay
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[F=0042] ST#9   input      press            (412,188)
func (e Event) String() string {
	return fmt.Sprintf("[F=%04d] %-6s %-10s %-16s %s",
		e.Frame, e.Player, e.Category, e.Key, e.Value)
}

// EventLog is a bounded ring of designer events. The oldest entries are
// overwritten once capacity is reached.
type EventLog struct {
	mu      sync.Mutex
	entries []Event
	head    int
	count   int
	total   int
}

// NewEventLog creates a log holding at most capacity events.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = eventLogCapacity
	}
	return &EventLog{entries: make([]Event, capacity)}
}

// Add records a new event.
func (el *EventLog) Add(frame int, player, category, key, value string, numVal float64) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.entries[el.head] = Event{
		Frame:    frame,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	el.head = (el.head + 1) % len(el.entries)
	if el.count < len(el.entries) {
		el.count++
	}
	el.total++
}

// Entries returns the retained events, oldest first.
func (el *EventLog) Entries() []Event {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.snapshot()
}

func (el *EventLog) snapshot() []Event {
	n := len(el.entries)
	out := make([]Event, el.count)
	for i := 0; i < el.count; i++ {
		out[i] = el.entries[(el.head-el.count+i+n)%n]
	}
	return out
}

// Recent returns up to n of the newest events, oldest first.
func (el *EventLog) Recent(n int) []Event {
	all := el.Entries()
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return all
}

// Len is the number of retained events.
func (el *EventLog) Len() int {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.count
}

// Total counts every event ever added, including overwritten ones.
func (el *EventLog) Total() int {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.total
}

// Filter returns events matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPlayer returns events for one player label.
func (el *EventLog) FilterPlayer(label string) []Event {
	var out []Event
	for _, e := range el.Entries() {
		if e.Player == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many events match the given category and key.
func (el *EventLog) CountCategory(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent event matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (Event, bool) {
	events := el.Filter(category, key)
	if len(events) == 0 {
		return Event{}, false
	}
	return events[len(events)-1], true
}

// HasEntry reports whether an event matches category, key and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.Filter(category, key) {
		if strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Dump formats every retained event, one per line.
func (el *EventLog) Dump() string {
	var b strings.Builder
	for _, e := range el.Entries() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
