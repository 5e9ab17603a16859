package column

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
)

// Encoding is the external representation of grid indexes in a column.
type Encoding uint8

const (
	// Auto inherits the encoding of the input index column.
	Auto Encoding = iota
	// UInt64 stores the packed index as arrow uint64.
	UInt64
	// Int64 stores the packed index bit pattern as arrow int64.
	Int64
	// Hex stores the index as a lowercase hexadecimal utf8 string.
	Hex
)

func (e Encoding) String() string {
	switch e {
	case Auto:
		return "auto"
	case UInt64:
		return "uint64"
	case Int64:
		return "int64"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Or returns e, or fallback when e is Auto.
func (e Encoding) Or(fallback Encoding) Encoding {
	if e == Auto {
		return fallback
	}
	return e
}

// DataType returns the Arrow type of a column holding indexes in encoding e.
func (e Encoding) DataType() (arrow.DataType, error) {
	switch e {
	case UInt64:
		return arrow.PrimitiveTypes.Uint64, nil
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Hex:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, e)
	}
}

type elemType interface {
	Elem() arrow.DataType
}

// InferEncoding maps an index column type to its encoding. List types resolve
// to the encoding of their elements.
func InferEncoding(dt arrow.DataType) (Encoding, error) {
	if dt == nil {
		return Auto, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}
	switch dt.ID() {
	case arrow.UINT64:
		return UInt64, nil
	case arrow.INT64:
		return Int64, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return Hex, nil
	case arrow.LIST:
		if lt, ok := dt.(elemType); ok {
			return InferEncoding(lt.Elem())
		}
	}
	return Auto, fmt.Errorf("%w for grid index: %s", ErrUnsupportedType, dt)
}
