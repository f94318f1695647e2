package rule

// CanBeat reports whether candidate beats current.
//
// Rocket beats everything, a bomb beats any non-bomb, and otherwise the two
// hands must be the same type (and same length for straights, pair straights
// and planes) with the candidate holding the strictly higher key value.
func CanBeat(current, candidate Combination) bool {
	if candidate.Type == Rocket {
		return true
	}
	if current.Type == Rocket {
		return false
	}

	if candidate.Type == Bomb && current.Type != Bomb {
		return true
	}
	if current.Type == Bomb && candidate.Type != Bomb {
		return false
	}

	if current.Type != candidate.Type {
		return false
	}
	if current.Length != candidate.Length {
		return false
	}
	return candidate.KeyValue > current.KeyValue
}
