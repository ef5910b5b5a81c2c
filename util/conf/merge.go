package conf

// MergeDefaults merges maps into a single DefaultConfig, prefixing
// every key with ns.
func MergeDefaults[M ~map[string]V, V any](ns string, maps ...M) DefaultConfig {
	fullCap := 0
	for _, m := range maps {
		fullCap += len(m)
	}

	merged := make(DefaultConfig, fullCap)
	for _, m := range maps {
		for key, val := range m {
			merged[ns+"."+key] = val
		}
	}

	return merged
}

// Merge combines multiple DefaultConfigs. Later maps win.
func (d DefaultConfig) Merge(others ...DefaultConfig) DefaultConfig {
	merged := make(DefaultConfig, len(d))
	for key, val := range d {
		merged[key] = val
	}

	for _, other := range others {
		for key, val := range other {
			merged[key] = val
		}
	}

	return merged
}
