package fractal

import (
	"errors"
	"fmt"
)

// Kind selects one of the four fractals.
type Kind int

const (
	Sierpinski Kind = iota
	Koch
	Pythagoras
	Dragon
)

// Kinds lists every fractal in selector order.
var Kinds = []Kind{Sierpinski, Koch, Pythagoras, Dragon}

var ErrUnknownKind = errors.New("unknown fractal kind")

// Selector values of the control surface
var kindNames = [...]string{
	Sierpinski: "sierpinski",
	Koch:       "koch",
	Pythagoras: "pitagoras",
	Dragon:     "dragao",
}

// Per-kind depth bounds. They keep the primitive count tractable:
// 3^8 triangles, 3·4^6 segments, 2^13-1 squares, 2^15 segments.
var maxDepth = [...]int{
	Sierpinski: 8,
	Koch:       6,
	Pythagoras: 12,
	Dragon:     15,
}

func (k Kind) Valid() bool {
	return k >= Sierpinski && k <= Dragon
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a selector value into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MaxDepth returns the depth bound of k.
func (k Kind) MaxDepth() int {
	if !k.Valid() {
		return 0
	}
	return maxDepth[k]
}

// ClampDepth limits depth to [0, k.MaxDepth()].
func (k Kind) ClampDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	if m := k.MaxDepth(); depth > m {
		return m
	}
	return depth
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
