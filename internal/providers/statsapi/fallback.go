package statsapi

// FallbackScoreboard is the canned one-game dataset served when the
// connectivity probe fails. The record appears under both the schedule's
// dates[].games[] nesting and the live feed's top-level games[] so that
// either parser can read it.
func FallbackScoreboard() map[string]interface{} {
	game := map[string]interface{}{
		"teams": map[string]interface{}{
			"away": map[string]interface{}{
				"team":  map[string]interface{}{"name": "Test Away"},
				"score": 21,
			},
			"home": map[string]interface{}{
				"team":  map[string]interface{}{"name": "Test Home"},
				"score": 14,
			},
		},
		"status": map[string]interface{}{"abstractGameState": "FINAL"},
	}

	return map[string]interface{}{
		"dates": []interface{}{
			map[string]interface{}{"games": []interface{}{game}},
		},
		"games": []interface{}{game},
	}
}
