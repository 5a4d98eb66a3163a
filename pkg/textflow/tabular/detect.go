package tabular

import (
	"strings"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
)

// reservedNames are column names that never hold prose: identifiers,
// bookkeeping values, metadata. The check is exact on the lowercased name.
var reservedNames = map[string]struct{}{
	"id":        {},
	"ids":       {},
	"index":     {},
	"key":       {},
	"code":      {},
	"line_code": {},
	"value":     {},
	"values":    {},
	"year":      {},
	"date":      {},
	"timestamp": {},
	"count":     {},
	"no":        {},
	"s_no":      {},
	"sl_no":     {},
}

func isReservedName(name string) bool {
	_, ok := reservedNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// SelectTargetColumn picks the column most likely to contain natural
// language: among columns whose name is not reserved, the one with the
// greatest mean string length of its values. Ties keep the earlier column.
// The heuristic is deliberately approximate; it only has to be
// deterministic for identical input.
func SelectTargetColumn(t *Table) (string, error) {
	var bestName string
	bestMean := -1.0

	for _, name := range t.names {
		if isReservedName(name) {
			continue
		}
		vals := t.cols[name]
		if len(vals) == 0 {
			continue
		}
		var total int
		for _, v := range vals {
			total += len(v)
		}
		mean := float64(total) / float64(len(vals))
		if mean > bestMean {
			bestName, bestMean = name, mean
		}
	}

	if bestName == "" {
		return "", internalerr.ErrNoTextColumn
	}
	return bestName, nil
}
