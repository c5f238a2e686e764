// Package scene holds the editor's in-memory scene graph: user-placed
// objects with transform and material state. The scene is the single source
// of truth; panels keep their own copies synchronized over the event bus.
package scene

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/framepeach/framepeach/internal/common"
)

// Axis names a transform component.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// ParseAxis maps a user-supplied axis name to an Axis.
func ParseAxis(s string) (Axis, bool) {
	switch Axis(s) {
	case AxisX, AxisY, AxisZ:
		return Axis(s), true
	}
	return "", false
}

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Set assigns the named component. Unknown axes are a validation error.
func (v *Vector3) Set(axis Axis, value float64) error {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	default:
		return fmt.Errorf("%w: unknown axis %q", common.ErrorValidation, axis)
	}
	return nil
}

// Material is the optional property bag attached to an object. Zero values
// mean "renderer default"; Opacity is stored explicitly because 0 is a
// meaningful value.
type Material struct {
	Color             string  `json:"color,omitempty"`
	Opacity           float64 `json:"opacity"`
	Metalness         float64 `json:"metalness"`
	Roughness         float64 `json:"roughness"`
	TextureMap        string  `json:"textureMap,omitempty"`
	NormalMap         string  `json:"normalMap,omitempty"`
	EmissiveColor     string  `json:"emissiveColor,omitempty"`
	EmissiveIntensity float64 `json:"emissiveIntensity"`
	Clearcoat         float64 `json:"clearcoat"`
	Transmission      float64 `json:"transmission"`
	IOR               float64 `json:"ior"`
	Sheen             float64 `json:"sheen"`
}

// SetProperty applies a single named material property. String-typed
// properties accept strings, numeric ones accept float64 or a numeric
// string. Unknown properties are a validation error.
func (m *Material) SetProperty(property string, value any) error {
	asFloat := func() (float64, error) {
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case string:
			return strconv.ParseFloat(v, 64)
		default:
			return 0, fmt.Errorf("%w: property %q needs a number", common.ErrorValidation, property)
		}
	}
	asString := func() (string, error) {
		if s, ok := value.(string); ok {
			return s, nil
		}
		return "", fmt.Errorf("%w: property %q needs a string", common.ErrorValidation, property)
	}

	var err error
	switch property {
	case "color":
		m.Color, err = asString()
	case "textureMap":
		m.TextureMap, err = asString()
	case "normalMap":
		m.NormalMap, err = asString()
	case "emissiveColor":
		m.EmissiveColor, err = asString()
	case "opacity":
		m.Opacity, err = asFloat()
	case "metalness":
		m.Metalness, err = asFloat()
	case "roughness":
		m.Roughness, err = asFloat()
	case "emissiveIntensity":
		m.EmissiveIntensity, err = asFloat()
	case "clearcoat":
		m.Clearcoat, err = asFloat()
	case "transmission":
		m.Transmission, err = asFloat()
	case "ior":
		m.IOR, err = asFloat()
	case "sheen":
		m.Sheen, err = asFloat()
	default:
		return fmt.Errorf("%w: unknown material property %q", common.ErrorValidation, property)
	}
	return err
}

// Object is a user-placed 3D entity: a primitive shape or an imported model
// reference plus transform and material state.
type Object struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	Position Vector3   `json:"position"`
	Rotation Vector3   `json:"rotation"`
	Scale    Vector3   `json:"scale"`
	Material *Material `json:"material,omitempty"`
	Visible  bool      `json:"visible"`
	Locked   bool      `json:"locked"`
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	cp := *o
	if o.Material != nil {
		mat := *o.Material
		cp.Material = &mat
	}
	return &cp
}

var (
	idMu     sync.Mutex
	idLastMs int64
	idSeq    int
)

// NewID returns a monotonic timestamp-based identifier. Objects created in
// the same millisecond get a sequence suffix so ids never collide.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now == idLastMs {
		idSeq++
		return fmt.Sprintf("%d-%d", now, idSeq)
	}
	idLastMs = now
	idSeq = 0
	return strconv.FormatInt(now, 10)
}

// NewObject creates an object of the given kind with identity transform,
// visible and unlocked. The display name defaults to the kind.
func NewObject(kind string) *Object {
	return &Object{
		ID:       NewID(),
		Kind:     kind,
		Name:     kind,
		Scale:    Vector3{X: 1, Y: 1, Z: 1},
		Material: &Material{Opacity: 1, Roughness: 1},
		Visible:  true,
	}
}
