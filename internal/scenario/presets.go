package scenario

func ptr[T any](v T) *T { return &v }

// BuiltIn returns the predefined experiment presets.
func BuiltIn() map[string]Preset {
	return map[string]Preset{
		"baseline": {
			Name:        "Baseline",
			Description: "Small open-field network with no failures, useful as a control run.",
			Overrides: Overrides{
				NodesNum:  ptr(25),
				AreaSizeX: ptr(300.0),
				AreaSizeY: ptr(300.0),
				Scenario:  ptr("none"),
			},
		},
		"forest-patrol": {
			Name:        "Forest Patrol",
			Description: "Dense canopy degrades radio range; tests spine placement under short links.",
			Overrides: Overrides{
				NodesNum:    ptr(40),
				AreaSizeX:   ptr(500.0),
				AreaSizeY:   ptr(500.0),
				Environment: ptr("forest"),
				TreeCount:   ptr(2000),
				WifiType:    ptr("80211n"),
			},
		},
		"wipe-east": {
			Name:        "Eastbound Wipe",
			Description: "A failure front sweeps the area west to east, culling nodes as it passes.",
			Overrides: Overrides{
				NodesNum:          ptr(30),
				AreaSizeX:         ptr(400.0),
				AreaSizeY:         ptr(400.0),
				Scenario:          ptr("wipe"),
				WipeDirection:     ptr("E"),
				WipeSpeed:         ptr(10.0),
				SpineNodesPercent: ptr(20.0),
				SpineVariant:      ptr("centroid"),
			},
		},
		"wipe-random": {
			Name:        "Random Wipe",
			Description: "Same failure front with the direction drawn per run, for direction-agnostic sweeps.",
			Overrides: Overrides{
				NodesNum:      ptr(30),
				AreaSizeX:     ptr(400.0),
				AreaSizeY:     ptr(400.0),
				Scenario:      ptr("wipe"),
				WipeDirection: ptr("R"),
				WipeSpeed:     ptr(10.0),
			},
		},
	}
}
