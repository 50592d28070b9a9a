package combine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned for method names and values that do not
// denote an algorithm.
var ErrUnknownMethod = errors.New("combine: unknown method")

// Method selects a combination algorithm.
type Method int

const (
	MethodAuto Method = iota
	MethodExact
	MethodFFT
	MethodGaussian
)

var methodNames = map[Method]string{
	MethodAuto:     "auto",
	MethodExact:    "exact",
	MethodFFT:      "fft",
	MethodGaussian: "gaussian",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Description returns a human readable name with the exactness of m.
func (m Method) Description() string {
	switch m {
	case MethodExact:
		return "Yergeev (exact)"
	case MethodFFT:
		return "FFT-accelerated (exact)"
	case MethodGaussian:
		return "Gaussian approximation"
	case MethodAuto:
		return "adaptive"
	default:
		return m.String()
	}
}

// IsExact reports whether m yields the exact distribution.
func (m Method) IsExact() bool {
	return m == MethodExact || m == MethodFFT
}

// ParseMethod parses a method name. "yergeev" is accepted for MethodExact.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return MethodAuto, nil
	case "exact", "yergeev":
		return MethodExact, nil
	case "fft":
		return MethodFFT, nil
	case "gaussian":
		return MethodGaussian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Methods returns every concrete algorithm in selection order.
func Methods() []Method {
	return []Method{MethodExact, MethodFFT, MethodGaussian}
}
