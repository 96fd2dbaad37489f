package config

import "maps"

// Merge returns a new Configuration with the entries of over layered on top of
// base. Neither input is modified, and the result shares no maps with them.
func Merge(base, over Configuration) Configuration {
	merged := Configuration{
		TypeKey:      base.TypeKey,
		Classes:      mergeMaps(base.Classes, over.Classes),
		Enumerations: mergeMaps(base.Enumerations, over.Enumerations),
		Functions:    mergeMaps(base.Functions, over.Functions),
		Logger:       base.Logger,
	}

	if over.TypeKey != "" {
		merged.TypeKey = over.TypeKey
	}

	if over.Logger != nil {
		merged.Logger = over.Logger
	}

	return merged
}

func mergeMaps[V any](base, over map[string]V) map[string]V {
	if base == nil && over == nil {
		return nil
	}

	out := make(map[string]V, len(base)+len(over))
	maps.Copy(out, base)
	maps.Copy(out, over)

	return out
}
