package scorer

import "sort"

// partition splits want into the members present in have and those absent,
// each sorted.
func partition(want, have map[string]struct{}) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	for term := range want {
		if _, ok := have[term]; ok {
			matched = append(matched, term)
			continue
		}
		missing = append(missing, term)
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}
