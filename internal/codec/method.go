package codec

import (
	"fmt"
	"strings"
)

// Method identifies a cipher in the registry.
type Method string

const (
	// MethodCaesar is the fixed shift-by-3 substitution.
	MethodCaesar Method = "caesar"
	// MethodAtbash is the mirrored alphabet substitution.
	MethodAtbash Method = "atbash"
	// MethodReverse reverses the text.
	MethodReverse Method = "reverse"
	// MethodBase64 is standard Base64.
	MethodBase64 Method = "base64"
	// MethodBMO is the 5-stage BMO cipher.
	MethodBMO Method = "bmo"
)

// Methods lists the known methods in display order.
func Methods() []Method {
	return []Method{MethodCaesar, MethodAtbash, MethodReverse, MethodBase64, MethodBMO}
}

// ParseMethod normalizes s into a Method. Unknown names are returned as-is
// together with ok=false.
func ParseMethod(s string) (method Method, ok bool) {
	method = Method(strings.ToLower(strings.TrimSpace(s)))

	for _, m := range Methods() {
		if m == method {
			return method, true
		}
	}

	return method, false
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m)
}

// Operation selects what to do with the input.
type Operation string

const (
	// OpEncode applies the method.
	OpEncode Operation = "encode"
	// OpDecode inverts the method.
	OpDecode Operation = "decode"
	// OpAuto ignores the method and runs detection.
	OpAuto Operation = "auto"
)

// ParseOperation converts s into an Operation.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OpEncode, OpDecode, OpAuto:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}
