package store

// Nested singleton objects that merge one level deep on update. Any other
// top-level key in a partial update overwrites the stored value wholesale.
var nestedSingletonFields = map[string]map[string]bool{
	SingletonProfile: {
		"identifiers":       true,
		"social":            true,
		"contributionStats": true,
	},
	SingletonSiteContent: {
		"branding": true,
		"hero":     true,
		"mission":  true,
	},
}

// mergeSingleton applies partial on top of existing. Shared by both store
// backends so singleton update semantics cannot drift between them.
func mergeSingleton(key string, existing, partial Document) Document {
	merged := make(Document, len(existing)+len(partial))
	for k, v := range existing {
		merged[k] = v
	}

	nested := nestedSingletonFields[key]
	for k, v := range partial {
		if nested[k] {
			if newObj, ok := v.(map[string]any); ok {
				if oldObj, ok := merged[k].(map[string]any); ok {
					merged[k] = mergeObjects(oldObj, newObj)
					continue
				}
			}
		}
		merged[k] = v
	}

	return merged
}

func mergeObjects(existing, partial map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(partial))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}
