package codebuf

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"unsafe"

	"golang.org/x/arch/arm64/arm64asm"
)

const (
	// ------------------------------------------
	// | 110100101 | hw | ... 16 bit imm | Rd |
	// ------------------------------------------
	_MOVZ = uint32(0x1a5 << 23)

	_RET = uint32(0xd65f03c0) // RET (R30)

	funcAlign = 16
)

// ReturnConst returns machine code for a function that returns v as an int.
func ReturnConst(v uint16) []byte {
	buf := make([]byte, funcAlign)

	// MOVZ $v, R0. R0 holds the first result.
	binary.LittleEndian.PutUint32(buf, _MOVZ|uint32(v)<<5)
	binary.LittleEndian.PutUint32(buf[4:], _RET)

	// The rest of the buffer stays zero, which is what the compiler pads
	// with.

	return buf
}

// Disassemble returns a listing of code, one instruction per line, with the
// addresses it's at.
func Disassemble(code []byte) (string, error) {
	var buf bytes.Buffer

	baseAddr := uintptr(unsafe.Pointer(unsafe.SliceData(code)))

	for i := 0; i < len(code)&^3; i += 4 {
		// Stop at the padding
		if bytes.Equal(code[i:i+4], []byte{0, 0, 0, 0}) {
			break
		}

		var asm string
		instruction, err := arm64asm.Decode(code[i:])
		if err == nil {
			asm = instruction.String()
		} else {
			asm = "?"
		}
		fmt.Fprintf(&buf, "0x%08x\t%-20s\t%s\n", baseAddr+uintptr(i), hex.EncodeToString(code[i:i+4]), asm)
	}

	return buf.String(), nil
}
