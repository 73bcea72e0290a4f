package cmd

import (
	"sort"
	"strings"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
	"github.com/msto63/rawtime/pkg/rawtime"
)

// precision pairs one integer encoding with its decoder
type precision struct {
	name   string
	digits int
	encode func(rawtime.RawTime) int64
	decode func(int64) (rawtime.RawTime, error)
}

var precisions = map[string]precision{
	"day": {
		name: "day", digits: 8,
		encode: rawtime.RawTime.EncodeDay,
		decode: func(v int64) (rawtime.RawTime, error) { return calc.FromRawLongDay(v) },
	},
	"minute": {
		name: "minute", digits: 12,
		encode: rawtime.RawTime.EncodeMinute,
		decode: func(v int64) (rawtime.RawTime, error) { return calc.FromRawLongMinute(v) },
	},
	"second": {
		name: "second", digits: 14,
		encode: rawtime.RawTime.EncodeSecond,
		decode: func(v int64) (rawtime.RawTime, error) { return calc.FromRawLongSecond(v) },
	},
	"full": {
		name: "full", digits: 17,
		encode: rawtime.RawTime.EncodeFull,
		decode: func(v int64) (rawtime.RawTime, error) { return calc.FromRawLong(v) },
	},
}

// precisionByDigits maps the digit count of years 1000-9999 to the encoding
var precisionByDigits = func() map[int]precision {
	m := make(map[int]precision, len(precisions))
	for _, p := range precisions {
		m[p.digits] = p
	}
	return m
}()

func lookupPrecision(name string) (precision, error) {
	if p, ok := precisions[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	names := make([]string, 0, len(precisions))
	for n := range precisions {
		names = append(names, n)
	}
	sort.Strings(names)
	return precision{}, mdwerror.Newf("unknown precision %q, want one of %s", name, strings.Join(names, ", ")).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("precision", name)
}
