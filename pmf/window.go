package pmf

import "fmt"

// Default display window used by reports, in charge units.
const (
	DefaultWindowLow  = -5
	DefaultWindowHigh = 5
)

// Point is one charge of a windowed distribution.
type Point struct {
	Charge      int
	Probability float64
}

// WindowResult is a display sub-range of a distribution together with the
// probability mass that falls outside it.
type WindowResult struct {
	Low, High int
	Points    []Point
	TailLow   float64 // mass strictly below Low
	TailHigh  float64 // mass strictly above High
}

// Window extracts charges low..high (inclusive) from p. Every charge of the
// window is reported, with probability 0 where p has no support, so windows of
// different distributions over the same bounds line up point by point.
func Window(p PMF, low, high int) (WindowResult, error) {
	if low > high {
		return WindowResult{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, low, high)
	}

	w := WindowResult{
		Low:    low,
		High:   high,
		Points: make([]Point, 0, high-low+1),
	}
	for c := low; c <= high; c++ {
		w.Points = append(w.Points, Point{Charge: c, Probability: p.At(c)})
	}
	for i, v := range p.Values {
		switch c := p.Offset + i; {
		case c < low:
			w.TailLow += v
		case c > high:
			w.TailHigh += v
		}
	}
	return w, nil
}

// Probabilities returns the window probabilities in charge order.
func (w WindowResult) Probabilities() []float64 {
	out := make([]float64, len(w.Points))
	for i, pt := range w.Points {
		out[i] = pt.Probability
	}
	return out
}

// PMF returns the window's probabilities as a distribution starting at Low.
func (w WindowResult) PMF() PMF {
	return PMF{Values: w.Probabilities(), Offset: w.Low}
}

// Central returns the mass inside the window.
func (w WindowResult) Central() float64 {
	var sum float64
	for _, pt := range w.Points {
		sum += pt.Probability
	}
	return sum
}
