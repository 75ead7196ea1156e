package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, s.name+":enter") }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, s.name+":update") }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Exit()                     { *s.log = append(*s.log, s.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.Quit()
	sm.Update(0.016)

	want := []string{"a:enter", "a:update", "a:exit", "b:enter", "b:exit"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if !sm.Done() || sm.Current() != nil {
		t.Fatalf("machine not stopped after Quit")
	}
}

func TestDragTracker(t *testing.T) {
	var d dragTracker

	if d.Press(10, 10, false) || d.Active() {
		t.Fatalf("press off target must not start a drag")
	}
	if _, _, ok := d.Move(50, 50); ok {
		t.Fatalf("move without drag reported displacement")
	}

	if !d.Press(10, 10, true) {
		t.Fatalf("press on target should start a drag")
	}
	dx, dy, ok := d.Move(15, 7)
	if !ok || dx != 5 || dy != -3 {
		t.Fatalf("move = (%v,%v,%v), want (5,-3,true)", dx, dy, ok)
	}
	if _, _, ok := d.Move(15, 7); ok {
		t.Fatalf("no movement should report nothing")
	}
	dx, dy, _ = d.Move(20, 20)
	if dx != 5 || dy != 13 {
		t.Fatalf("move is not relative to last position: (%v,%v)", dx, dy)
	}

	d.Release()
	if d.Active() {
		t.Fatalf("still active after release")
	}
}
