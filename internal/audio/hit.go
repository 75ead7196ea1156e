// internal/audio/hit.go
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"go-watch-out/internal/config"
	"go-watch-out/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate   = 44100
	HitFrequency = 660.0
	HitDuration  = 80 * time.Millisecond
	hitVolume    = 0.3
)

// HitSound проигрывает короткий сигнал при столкновении с врагом.
// Сигналы чаще Cooldown пропускаются, иначе в режиме level звук не смолкает.
type HitSound struct {
	Cooldown time.Duration

	pcm   []byte
	play  func(pcm []byte)
	now   func() time.Time
	last  time.Time
	plays int
}

// NewHitSound создаёт звук поверх аудиоконтекста ebiten.
func NewHitSound(ctx *audio.Context) *HitSound {
	return newHitSound(func(pcm []byte) {
		ctx.NewPlayerFromBytes(pcm).Play()
	}, time.Now, ctx.SampleRate())
}

func newHitSound(play func([]byte), now func() time.Time, sampleRate int) *HitSound {
	return &HitSound{
		Cooldown: config.HitSoundCooldown,
		pcm:      GenerateTone(HitFrequency, HitDuration, sampleRate),
		play:     play,
		now:      now,
	}
}

// OnEvent реализует event.Listener.
func (h *HitSound) OnEvent(e event.Event) {
	if e.Type != event.EnemyCollided {
		return
	}
	t := h.now()
	if h.plays > 0 && t.Sub(h.last) < h.Cooldown {
		return
	}
	h.last = t
	h.plays++
	h.play(h.pcm)
}

// Plays — сколько раз звук был запущен.
func (h *HitSound) Plays() int { return h.plays }

// GenerateTone возвращает синус частоты freq длиной d в формате ebiten:
// 16 бит little-endian, стерео. Амплитуда линейно затухает к концу.
func GenerateTone(freq float64, d time.Duration, sampleRate int) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * fade * hitVolume
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
