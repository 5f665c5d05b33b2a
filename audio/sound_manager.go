package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/event"
	"github.com/lixenwraith/tidewake/parameter"
)

// SoundManager plays one-shot cues through a single speaker mixer
// All methods are safe to call before Initialize or after Cleanup; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	now         func() time.Time
	log         zerolog.Logger
}

// NewSoundManager creates a new sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug().Int("rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup silences all cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue, dropping it when the same cue played within MinSoundGap
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || st < 0 || st >= core.SoundTypeCount {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// Subscribe plays cues for simulation events until the returned func is called
func (sm *SoundManager) Subscribe(bus *event.Bus) (unsubscribe func()) {
	return bus.Subscribe(func(ev event.GameEvent) {
		for _, st := range CuesFor(ev) {
			sm.Play(st)
		}
	}, event.EventModeChanged, event.EventFragmentCollected)
}

// CuesFor maps a simulation event to the cues it triggers, in play order
func CuesFor(ev event.GameEvent) []core.SoundType {
	switch ev.Type {
	case event.EventModeChanged:
		p, ok := ev.Payload.(*event.ModeChangedPayload)
		if !ok {
			return nil
		}
		if p.To == core.ModePlayer {
			return []core.SoundType{core.SoundHorn}
		}
		return []core.SoundType{core.SoundSwash}
	case event.EventFragmentCollected:
		p, ok := ev.Payload.(*event.FragmentCollectedPayload)
		if !ok {
			return nil
		}
		if p.Remaining == 0 {
			return []core.SoundType{core.SoundChime, core.SoundFanfare}
		}
		return []core.SoundType{core.SoundChime}
	}
	return nil
}
