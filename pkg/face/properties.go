package face

import (
	"sort"
	"strings"

	"github.com/idemia/go-iso19794/pkg/codec"
)

// Properties is the property mask: a set of boolean facial attributes packed
// into the low bits of a 24-bit big-endian integer. Flags combine with OR.
type Properties uint32

const (
	PropertySpecified        Properties = 1 << 0
	PropertyGlasses          Properties = 1 << 1
	PropertyMoustache        Properties = 1 << 2
	PropertyBeard            Properties = 1 << 3
	PropertyTeethVisible     Properties = 1 << 4
	PropertyBlink            Properties = 1 << 5
	PropertyMouthOpen        Properties = 1 << 6
	PropertyLeftEyePatch     Properties = 1 << 7
	PropertyRightEyePatch    Properties = 1 << 8
	PropertyDarkGlasses      Properties = 1 << 9
	PropertyMedicalCondition Properties = 1 << 10
)

// propertiesKnown is the union of every defined flag; bits outside it are
// rejected on both decode and encode.
const propertiesKnown = PropertyMedicalCondition<<1 - 1

var propertyNames = map[Properties]string{
	PropertySpecified:        "SPECIFIED",
	PropertyGlasses:          "GLASSES",
	PropertyMoustache:        "MOUSTACHE",
	PropertyBeard:            "BEARD",
	PropertyTeethVisible:     "TEETH_VISIBLE",
	PropertyBlink:            "BLINK",
	PropertyMouthOpen:        "MOUTH_OPEN",
	PropertyLeftEyePatch:     "LEFT_EYE_PATCH",
	PropertyRightEyePatch:    "RIGHT_EYE_PATCH",
	PropertyDarkGlasses:      "DARK_GLASSES",
	PropertyMedicalCondition: "MEDICAL_CONDITION",
}

var propertyCodes = make(map[string]Properties, len(propertyNames))

func init() {
	for k, v := range propertyNames {
		propertyCodes[v] = k
	}
}

// Valid reports whether p uses only defined flag bits.
func (p Properties) Valid() bool {
	return p&^propertiesKnown == 0
}

// Has reports whether every flag in q is set in p.
func (p Properties) Has(q Properties) bool {
	return p&q == q
}

// Names returns the symbolic names of the set flags in bit order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(propertyNames))
	for flag, name := range propertyNames {
		if p&flag != 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return propertyCodes[names[i]] < propertyCodes[names[j]]
	})
	return names
}

func (p Properties) String() string {
	return strings.Join(p.Names(), "|")
}

// ParseProperties ORs together the named flags.
func ParseProperties(names []string) (Properties, error) {
	var p Properties
	for _, name := range names {
		flag, ok := propertyCodes[name]
		if !ok {
			return 0, &codec.UnknownValueError{Field: "property_mask", Value: name}
		}
		p |= flag
	}
	return p, nil
}
