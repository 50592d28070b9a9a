package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-ptm/site"
)

var errSiteArg = errors.New(`site must be "id:copies:p1,p2,..."`)

// parseSite parses one --site value. The probability count is checked later
// against the table range.
func parseSite(arg string) (site.Site, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 {
		return site.Site{}, fmt.Errorf("%w: %q", errSiteArg, arg)
	}

	id := strings.TrimSpace(parts[0])
	if id == "" {
		return site.Site{}, fmt.Errorf("%w: %q: empty id", errSiteArg, arg)
	}

	copies, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return site.Site{}, fmt.Errorf("%w: %q: copies: %w", errSiteArg, arg, err)
	}

	fields := strings.Split(parts[2], ",")
	probs := make([]float64, len(fields))
	for i, f := range fields {
		probs[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return site.Site{}, fmt.Errorf("%w: %q: probability %d: %w", errSiteArg, arg, i+1, err)
		}
	}

	return site.Site{ID: id, Copies: copies, Probs: probs}, nil
}

// chargeRange resolves the table range from --labels when given, otherwise
// from --min and --max.
func chargeRange(labels string, lo, hi int) (site.ChargeRange, error) {
	if labels == "" {
		return site.NewChargeRange(lo, hi)
	}
	return site.RangeFromLabels(strings.Split(labels, ","))
}
