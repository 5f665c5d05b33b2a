package parameter

// Fragment session
const (
	// FragmentCount is the number of fragments spawned when a session starts
	FragmentCount = 15

	// FragmentPickupRadius is the vessel-to-fragment distance that collects
	FragmentPickupRadius = 5.0

	// FragmentHoverOffset lifts fragments above the wave surface
	FragmentHoverOffset = 1.5

	// FragmentWaveInfluence scales wave height into fragment vertical offset
	FragmentWaveInfluence = 0.35

	FragmentRotationMin = 0.01
	FragmentRotationMax = 0.04

	// FragmentRollStep is the fixed roll increment per tick
	FragmentRollStep = 0.01

	// FragmentSpawnInset keeps spawns away from the ocean edge
	FragmentSpawnInset = 5.0
)
