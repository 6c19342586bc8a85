package vector

// Vector is a minimal abstraction over dense and sparse numeric vectors.
// KnownSize returns the number of explicitly stored entries, UnknownSize
// the number of coordinates which are implicit zeros and never materialized.
// Invariant: KnownSize() + UnknownSize() == Dims()
type Vector interface {
	Dims() int
	KnownSize() int
	UnknownSize() int
	GetValue(index int) float64
	SetValue(index int, value float64)
	ForEachValue(fn func(value float64))
	ForEachEntry(fn func(index int, value float64))
}

// Dense holds every coordinate explicitly
type Dense struct {
	values []float64
}

// NewDense wraps the given slice without copying it
func NewDense(values []float64) *Dense {
	if values == nil {
		values = make([]float64, 0)
	}
	return &Dense{values: values}
}

func (d *Dense) Dims() int {
	return len(d.values)
}

func (d *Dense) KnownSize() int {
	return len(d.values)
}

func (d *Dense) UnknownSize() int {
	return 0
}

func (d *Dense) GetValue(index int) float64 {
	return d.values[index]
}

func (d *Dense) SetValue(index int, value float64) {
	d.values[index] = value
}

func (d *Dense) ForEachValue(fn func(value float64)) {
	for _, value := range d.values {
		fn(value)
	}
}

func (d *Dense) ForEachEntry(fn func(index int, value float64)) {
	for index, value := range d.values {
		fn(index, value)
	}
}

// Values exposes the underlying slice
func (d *Dense) Values() []float64 {
	return d.values
}

// Sparse stores only the explicitly set coordinates, all the other
// ones are treated as exact zeros
type Sparse struct {
	indices []int
	values  []float64
	dims    int
}

// NewSparse creates an empty sparse vector of the given dimensionality
func NewSparse(dims int) *Sparse {
	return &Sparse{dims: dims}
}

func (s *Sparse) Dims() int {
	return s.dims
}

func (s *Sparse) KnownSize() int {
	return len(s.values)
}

func (s *Sparse) UnknownSize() int {
	return s.dims - len(s.values)
}

func (s *Sparse) GetValue(index int) float64 {
	for i, idx := range s.indices {
		if idx == index {
			return s.values[i]
		}
	}
	return 0
}

// SetValue materializes the coordinate if it has not been set before
func (s *Sparse) SetValue(index int, value float64) {
	for i, idx := range s.indices {
		if idx == index {
			s.values[i] = value
			return
		}
	}
	s.indices = append(s.indices, index)
	s.values = append(s.values, value)
}

func (s *Sparse) ForEachValue(fn func(value float64)) {
	for _, value := range s.values {
		fn(value)
	}
}

func (s *Sparse) ForEachEntry(fn func(index int, value float64)) {
	for i, idx := range s.indices {
		fn(idx, s.values[i])
	}
}

// Scale multiplies every explicit entry by the given factor
func Scale(vec Vector, factor float64) {
	vec.ForEachEntry(func(index int, value float64) {
		vec.SetValue(index, value*factor)
	})
}

// Shift adds the given delta to every explicit entry
func Shift(vec Vector, delta float64) {
	vec.ForEachEntry(func(index int, value float64) {
		vec.SetValue(index, value+delta)
	})
}

// Fill sets every explicit entry to the given value
func Fill(vec Vector, value float64) {
	vec.ForEachEntry(func(index int, _ float64) {
		vec.SetValue(index, value)
	})
}
