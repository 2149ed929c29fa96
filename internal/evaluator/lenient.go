package evaluator

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// lenientIntExtension decodes int fields from JSON numbers with a fraction and from quoted numbers.
type lenientIntExtension struct {
	jsoniter.DummyExtension
}

func (e *lenientIntExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Kind() == reflect.Int {
		return &lenientIntDecoder{}
	}
	return nil
}

type lenientIntDecoder struct{}

func (d *lenientIntDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var n float64
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		n = iter.ReadFloat64()
	case jsoniter.StringValue:
		s := strings.TrimSpace(iter.ReadString())
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			iter.ReportError("decode int", "cannot parse "+strconv.Quote(s)+" as number")
			return
		}
		n = f
	case jsoniter.NilValue:
		iter.Skip()
		return
	default:
		iter.ReportError("decode int", "expect number or numeric string")
		return
	}
	*(*int)(ptr) = int(math.Round(n))
}
