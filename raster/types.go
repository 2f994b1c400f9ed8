package raster

import "errors"

// ErrUnsupportedType indicates band data with a type that has no defined
// stretch or histogram-binning policy.
var ErrUnsupportedType = errors.New("unsupported band data type")

// DataType identifies the native pixel type of a band. Band values are
// carried as float64 in memory; the DataType tag decides type-dependent
// policy such as histogram binning and noise cleanup.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeUint8
	TypeInt16
	TypeInt32
	TypeUint16
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
)

// IsInteger reports whether the type belongs to the integer family.
func (t DataType) IsInteger() bool {
	switch t {
	case TypeUint8, TypeInt16, TypeInt32, TypeUint16, TypeUint32, TypeInt64, TypeUint64:
		return true
	}
	return false
}

// IsFloat reports whether the type belongs to the floating-point family.
func (t DataType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

func (t DataType) String() string {
	switch t {
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	}
	return "unknown"
}

// Band selects a channel of an image. BandGrey doubles as the
// "no band specified" value for single-channel images, mirroring how
// greyscale operations ignore any selector they are handed.
type Band int

const (
	BandGrey Band = iota
	BandRed
	BandGreen
	BandBlue
)

func (b Band) String() string {
	switch b {
	case BandGrey:
		return "grey"
	case BandRed:
		return "red"
	case BandGreen:
		return "green"
	case BandBlue:
		return "blue"
	}
	return "invalid"
}

// BandLabel pairs a band's name with its wavelength label. Label order is
// positionally aligned with band order everywhere both appear together.
type BandLabel struct {
	Name       string `json:"name"`
	Wavelength string `json:"wavelength"`
}
