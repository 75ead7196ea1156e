package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"go-watch-out/internal/event"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestGenerateToneLayout(t *testing.T) {
	pcm := GenerateTone(440, 10*time.Millisecond, 1000)
	if len(pcm) != 10*4 {
		t.Fatalf("len = %d, want 40", len(pcm))
	}
	for i := 0; i < len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d right %d", i/4, l, r)
		}
	}
	if first := int16(binary.LittleEndian.Uint16(pcm)); first != 0 {
		t.Fatalf("tone should start at zero, got %d", first)
	}
	if GenerateTone(440, 0, 44100) != nil {
		t.Fatalf("zero duration should give no samples")
	}
}

func TestHitSoundDebounces(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	var played int
	h := newHitSound(func([]byte) { played++ }, clock.now, SampleRate)
	hit := event.Event{Type: event.EnemyCollided, Data: event.CollisionData{EnemyID: 4}}

	h.OnEvent(hit)
	clock.t = clock.t.Add(h.Cooldown / 2)
	h.OnEvent(hit)
	if played != 1 {
		t.Fatalf("played %d times inside cooldown, want 1", played)
	}

	clock.t = clock.t.Add(h.Cooldown)
	h.OnEvent(hit)
	if played != 2 || h.Plays() != 2 {
		t.Fatalf("played %d (Plays %d), want 2", played, h.Plays())
	}
}

func TestHitSoundIgnoresOtherEvents(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	h := newHitSound(func([]byte) { t.Fatalf("unexpected play") }, clock.now, SampleRate)
	h.OnEvent(event.Event{Type: event.ScoreChanged})
	h.OnEvent(event.Event{Type: event.LegStarted})
}
