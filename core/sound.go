package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundChime   SoundType = iota // Fragment pickup
	SoundHorn                     // Helm taken
	SoundSwash                    // Helm released
	SoundFanfare                  // Last fragment collected
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"chime", "horn", "swash", "fanfare"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundTypeByName resolves a cue name as used in config
func SoundTypeByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
